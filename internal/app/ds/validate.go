package ds

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Field constraints mirror what the web forms promise the users: plain
// letter names, dosages like "200mg", free-form frequency text.
var (
	patientNameRe    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	medicationNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-.]+$`)
	dosageRe         = regexp.MustCompile(`^[0-9]+(mg|g|ml|mcg)$`)
	frequencyRe      = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

const (
	MinTreatmentDays = 1
	MaxTreatmentDays = 365
)

var ErrInvalidDays = fmt.Errorf("days must be between %d and %d", MinTreatmentDays, MaxTreatmentDays)

func ValidatePatientName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return errors.New("name must be 2-100 characters")
	}
	if !patientNameRe.MatchString(name) {
		return errors.New("name must contain only letters and spaces")
	}
	return nil
}

func ValidateMedicationName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return errors.New("medication name must be 2-100 characters")
	}
	if !medicationNameRe.MatchString(name) {
		return errors.New("medication name must contain only letters, numbers, spaces, hyphens and dots")
	}
	return nil
}

func ValidateDosage(dosage string) error {
	if len(dosage) < 1 || len(dosage) > 50 {
		return errors.New("dosage must be 1-50 characters")
	}
	if !dosageRe.MatchString(dosage) {
		return errors.New("dosage must be a number followed by mg, g, ml or mcg")
	}
	return nil
}

func ValidateFrequency(frequency string) error {
	if len(frequency) < 3 || len(frequency) > 100 {
		return errors.New("frequency must be 3-100 characters")
	}
	if !frequencyRe.MatchString(frequency) {
		return errors.New("frequency must contain only letters and spaces")
	}
	return nil
}

func ValidateDays(days int) error {
	if days < MinTreatmentDays || days > MaxTreatmentDays {
		return ErrInvalidDays
	}
	return nil
}

// ParseDate accepts an ISO-8601 date, with or without a time component.
// Whatever comes in, only the calendar date survives.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}
