package treatment

import (
	"testing"
	"time"

	"medtracker/internal/app/ds"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// All scenarios evaluated against a fixed "today" of 2024-01-15.
var today = date("2024-01-15")

func TestRemainingDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		days  int
		want  int
	}{
		{"started five days ago", "2024-01-10", 10, 5},
		{"treatment period ended", "2024-01-01", 10, 0},
		{"starts today", "2024-01-15", 7, 7},
		{"ends tomorrow", "2024-01-09", 7, 1},
		{"future start inflates remainder", "2024-01-20", 7, 12},
		{"long treatment", "2024-01-01", 30, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemainingDays(date(tc.start), today, tc.days)
			if got != tc.want {
				t.Fatalf("RemainingDays(%s, today, %d) = %d, want %d", tc.start, tc.days, got, tc.want)
			}
		})
	}
}

func TestRemainingDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	now := time.Date(2024, 1, 15, 0, 0, 1, 0, time.FixedZone("CET", 3600))

	if got := RemainingDays(start, now, 10); got != 5 {
		t.Fatalf("expected time-of-day and zone to be irrelevant, got %d", got)
	}
}

func TestRemainingDaysNeverNegative(t *testing.T) {
	for days := 1; days <= 365; days += 7 {
		for offset := 0; offset < 400; offset += 13 {
			start := today.AddDate(0, 0, -offset)
			got := RemainingDays(start, today, days)
			if got < 0 {
				t.Fatalf("negative remainder %d for start=-%dd days=%d", got, offset, days)
			}
			if got > days {
				t.Fatalf("remainder %d exceeds duration %d for past start", got, days)
			}
		}
	}
}

func TestRemainingDaysStartingTodayReturnsFullDuration(t *testing.T) {
	for _, days := range []int{1, 30, 180, 365} {
		if got := RemainingDays(today, today, days); got != days {
			t.Fatalf("start=today days=%d: got %d", days, got)
		}
	}
}

func TestRemainingDaysMonotonicInStartDate(t *testing.T) {
	prev := RemainingDays(today, today, 30)
	for offset := 1; offset <= 60; offset++ {
		got := RemainingDays(today.AddDate(0, 0, -offset), today, 30)
		if got > prev {
			t.Fatalf("remainder increased from %d to %d as start moved earlier", prev, got)
		}
		prev = got
	}
}

func TestEnrichAttachesRemainingDays(t *testing.T) {
	a := ds.Assignment{
		ID:           3,
		PatientID:    1,
		MedicationID: 2,
		StartDate:    date("2024-01-10"),
		Days:         10,
		Patient:      ds.Patient{ID: 1, Name: "John Doe"},
		Medication:   ds.Medication{ID: 2, Name: "Aspirin", Dosage: "100mg"},
	}

	e := Enrich(a, today)
	if e.RemainingDays != 5 {
		t.Fatalf("remainingDays = %d, want 5", e.RemainingDays)
	}
	if e.ID != a.ID || e.PatientID != a.PatientID || e.MedicationID != a.MedicationID {
		t.Fatal("enrichment must keep the original identifiers")
	}
	if e.Patient.Name != "John Doe" || e.Medication.Name != "Aspirin" {
		t.Fatal("enrichment must keep the preloaded associations")
	}
}

func TestEnrichAllPreservesCountAndOrder(t *testing.T) {
	list := []ds.Assignment{
		{ID: 10, StartDate: date("2024-01-10"), Days: 10},
		{ID: 20, StartDate: date("2024-01-01"), Days: 10},
		{ID: 30, StartDate: date("2024-01-15"), Days: 7},
	}

	enriched := EnrichAll(list, today)
	if len(enriched) != len(list) {
		t.Fatalf("got %d enriched records, want %d", len(enriched), len(list))
	}
	wantRemaining := []int{5, 0, 7}
	for i, e := range enriched {
		if e.ID != list[i].ID {
			t.Fatalf("order changed at index %d: id %d, want %d", i, e.ID, list[i].ID)
		}
		if e.RemainingDays != wantRemaining[i] {
			t.Fatalf("index %d: remainingDays = %d, want %d", i, e.RemainingDays, wantRemaining[i])
		}
	}

	if empty := EnrichAll(nil, today); len(empty) != 0 {
		t.Fatalf("enriching nothing yielded %d records", len(empty))
	}
}
