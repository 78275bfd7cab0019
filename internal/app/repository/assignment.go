package repository

import (
	"medtracker/internal/app/ds"
)

// ListAssignments returns every assignment in storage order with its
// patient and medication preloaded.
func (r *Repository) ListAssignments() ([]ds.Assignment, error) {
	var assignments []ds.Assignment
	err := r.db.Preload("Patient").Preload("Medication").Order("id").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *Repository) GetAssignment(id uint) (*ds.Assignment, error) {
	var assignment ds.Assignment
	err := r.db.Preload("Patient").Preload("Medication").First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CreateAssignment fails with gorm.ErrRecordNotFound if either referenced
// entity does not exist, before anything is written.
func (r *Repository) CreateAssignment(a *ds.Assignment) error {
	if err := r.db.First(&ds.Patient{}, a.PatientID).Error; err != nil {
		return err
	}
	if err := r.db.First(&ds.Medication{}, a.MedicationID).Error; err != nil {
		return err
	}
	return r.db.Omit("Patient", "Medication").Create(a).Error
}

// UpdateAssignment applies a partial update; fields absent from the map
// keep their stored values. Re-pointed references are checked first so a
// bad id never produces a partial write.
func (r *Repository) UpdateAssignment(id uint, fields map[string]interface{}) (*ds.Assignment, error) {
	if err := r.db.First(&ds.Assignment{}, id).Error; err != nil {
		return nil, err
	}
	if patientID, ok := fields["patient_id"]; ok {
		if err := r.db.First(&ds.Patient{}, patientID).Error; err != nil {
			return nil, err
		}
	}
	if medicationID, ok := fields["medication_id"]; ok {
		if err := r.db.First(&ds.Medication{}, medicationID).Error; err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		if err := r.db.Model(&ds.Assignment{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetAssignment(id)
}

func (r *Repository) DeleteAssignment(id uint) error {
	if err := r.db.First(&ds.Assignment{}, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&ds.Assignment{}, id).Error
}

func (r *Repository) CountAssignmentsForPatient(patientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Assignment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *Repository) CountAssignmentsForMedication(medicationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Assignment{}).Where("medication_id = ?", medicationID).Count(&count).Error
	return count, err
}
