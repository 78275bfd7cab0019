package repository

import (
	"errors"
	"os"
	"testing"
	"time"

	"medtracker/internal/app/ds"

	"gorm.io/gorm"
)

// Needs a live postgres, e.g.
// TEST_DB_DSN="host=localhost user=postgres password=123 dbname=medtracker_test sslmode=disable"
func testRepo(t *testing.T) *Repository {
	t.Helper()
	dsnStr := os.Getenv("TEST_DB_DSN")
	if dsnStr == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	r, err := New(dsnStr)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := r.db.AutoMigrate(&ds.User{}, &ds.Patient{}, &ds.Medication{}, &ds.Assignment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	r.db.Exec("DELETE FROM assignments")
	r.db.Exec("DELETE FROM patients")
	r.db.Exec("DELETE FROM medications")
	return r
}

func seedAssignment(t *testing.T, r *Repository) (ds.Patient, ds.Medication, ds.Assignment) {
	t.Helper()
	p := ds.Patient{Name: "John Doe", DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)}
	if err := r.CreatePatient(&p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	m := ds.Medication{Name: "Aspirin", Dosage: "100mg", Frequency: "twice daily"}
	if err := r.CreateMedication(&m); err != nil {
		t.Fatalf("create medication: %v", err)
	}
	a := ds.Assignment{
		PatientID:    p.ID,
		MedicationID: m.ID,
		StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Days:         10,
	}
	if err := r.CreateAssignment(&a); err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	return p, m, a
}

func TestDeletePatientCascadesToAssignments(t *testing.T) {
	r := testRepo(t)
	p, m, _ := seedAssignment(t, r)

	// second assignment for the same patient
	a2 := ds.Assignment{PatientID: p.ID, MedicationID: m.ID, StartDate: time.Now(), Days: 5}
	if err := r.CreateAssignment(&a2); err != nil {
		t.Fatalf("create second assignment: %v", err)
	}

	if err := r.DeletePatient(p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	count, err := r.CountAssignmentsForPatient(p.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 assignments after cascade, got %d", count)
	}
	if _, err := r.GetPatient(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestDeleteMedicationCascadesToAssignments(t *testing.T) {
	r := testRepo(t)
	_, m, a := seedAssignment(t, r)

	if err := r.DeleteMedication(m.ID); err != nil {
		t.Fatalf("delete medication: %v", err)
	}
	if _, err := r.GetAssignment(a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected cascaded assignment to be gone, got %v", err)
	}
}

func TestCreateAssignmentRejectsUnresolvedReferences(t *testing.T) {
	r := testRepo(t)
	p, _, _ := seedAssignment(t, r)

	a := ds.Assignment{PatientID: p.ID, MedicationID: 999999, StartDate: time.Now(), Days: 10}
	if err := r.CreateAssignment(&a); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for bad medication id, got %v", err)
	}
}

func TestUpdateAssignmentPartialFields(t *testing.T) {
	r := testRepo(t)
	p, m, a := seedAssignment(t, r)

	updated, err := r.UpdateAssignment(a.ID, map[string]interface{}{"days": 20})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Days != 20 {
		t.Fatalf("days = %d, want 20", updated.Days)
	}
	// untouched fields keep their stored values
	if updated.PatientID != p.ID || updated.MedicationID != m.ID {
		t.Fatal("partial update must not touch absent fields")
	}
	if !updated.StartDate.Equal(a.StartDate) {
		t.Fatalf("startDate changed: %v -> %v", a.StartDate, updated.StartDate)
	}

	if _, err := r.UpdateAssignment(a.ID, map[string]interface{}{"patient_id": 424242}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for bad patient id, got %v", err)
	}
}

func TestMutationsOnMissingIDReturnNotFound(t *testing.T) {
	r := testRepo(t)

	if _, err := r.UpdatePatient(12345, map[string]interface{}{"name": "Jane"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("update missing patient: %v", err)
	}
	if err := r.DeleteMedication(12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("delete missing medication: %v", err)
	}
	if err := r.DeleteAssignment(12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("delete missing assignment: %v", err)
	}
}
