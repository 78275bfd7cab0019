package treatment

import (
	"time"

	"medtracker/internal/app/ds"
)

// RemainingDays reports how many treatment days are left as of now, given
// the start date and the total treatment length in days.
//
// Both dates are normalized to midnight UTC first, so the result depends
// only on the calendar-day difference and never on time of day or zone.
// The remainder is clamped at zero once the treatment window has fully
// elapsed. A start date in the future is not special-cased: the elapsed
// count goes negative and the result comes out larger than totalDays
// (totalDays plus the days until the treatment begins). Callers rely on
// that behavior, do not "fix" it here without changing them too.
func RemainingDays(start, now time.Time, totalDays int) int {
	start = midnight(start)
	today := midnight(now)

	elapsed := int(today.Sub(start) / (24 * time.Hour))
	remaining := totalDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// midnight strips the time-of-day component, pinning the date to UTC so
// subtraction always yields an exact multiple of 24h.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Enriched is the read-path shape of an assignment: every stored field plus
// the derived remainingDays. The value is recomputed on every request and
// never persisted.
type Enriched struct {
	ds.Assignment
	RemainingDays int `json:"remainingDays"`
}

func Enrich(a ds.Assignment, now time.Time) Enriched {
	return Enriched{
		Assignment:    a,
		RemainingDays: RemainingDays(a.StartDate, now, a.Days),
	}
}

// EnrichAll maps a list of assignments to their enriched form, preserving
// order and count.
func EnrichAll(assignments []ds.Assignment, now time.Time) []Enriched {
	enriched := make([]Enriched, 0, len(assignments))
	for _, a := range assignments {
		enriched = append(enriched, Enrich(a, now))
	}
	return enriched
}
