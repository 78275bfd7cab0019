package ds

import (
	"testing"
	"time"
)

func TestValidateDosage(t *testing.T) {
	valid := []string{"100mg", "1g", "250ml", "50mcg"}
	for _, d := range valid {
		if err := ValidateDosage(d); err != nil {
			t.Errorf("ValidateDosage(%q) = %v, want nil", d, err)
		}
	}

	invalid := []string{"", "mg", "100", "100 mg", "100kg", "-5mg", "100mg twice"}
	for _, d := range invalid {
		if err := ValidateDosage(d); err == nil {
			t.Errorf("ValidateDosage(%q) = nil, want error", d)
		}
	}
}

func TestValidatePatientName(t *testing.T) {
	if err := ValidatePatientName("John Doe"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, name := range []string{"J", "John42", "John_Doe", ""} {
		if err := ValidatePatientName(name); err == nil {
			t.Errorf("ValidatePatientName(%q) = nil, want error", name)
		}
	}
}

func TestValidateMedicationName(t *testing.T) {
	for _, name := range []string{"Aspirin", "Vitamin B-12", "St. Johns Wort 500"} {
		if err := ValidateMedicationName(name); err != nil {
			t.Errorf("ValidateMedicationName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"A", "Aspirin!", ""} {
		if err := ValidateMedicationName(name); err == nil {
			t.Errorf("ValidateMedicationName(%q) = nil, want error", name)
		}
	}
}

func TestValidateDays(t *testing.T) {
	for _, days := range []int{1, 180, 365} {
		if err := ValidateDays(days); err != nil {
			t.Errorf("ValidateDays(%d) = %v, want nil", days, err)
		}
	}
	for _, days := range []int{0, -1, 366} {
		if err := ValidateDays(days); err == nil {
			t.Errorf("ValidateDays(%d) = nil, want error", days)
		}
	}
}

func TestParseDateDropsTimeComponent(t *testing.T) {
	got, err := ParseDate("2024-01-10T15:04:05Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDate("10.01.2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}
