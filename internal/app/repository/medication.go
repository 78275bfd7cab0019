package repository

import (
	"medtracker/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) ListMedications(name string) ([]ds.Medication, error) {
	var medications []ds.Medication
	q := r.db.Order("id")
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+name+"%")
	}
	if err := q.Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *Repository) GetMedication(id uint) (*ds.Medication, error) {
	var medication ds.Medication
	if err := r.db.First(&medication, id).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *Repository) CreateMedication(m *ds.Medication) error {
	return r.db.Create(m).Error
}

func (r *Repository) UpdateMedication(id uint, fields map[string]interface{}) (*ds.Medication, error) {
	if err := r.db.First(&ds.Medication{}, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&ds.Medication{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetMedication(id)
}

func (r *Repository) UpdateMedicationImage(id uint, key string) error {
	return r.db.Model(&ds.Medication{}).Where("id = ?", id).Update("image_key", key).Error
}

// DeleteMedication cascades to the medication's assignments, same shape as
// DeletePatient.
func (r *Repository) DeleteMedication(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var medication ds.Medication
		if err := tx.First(&medication, id).Error; err != nil {
			return err
		}
		if err := tx.Where("medication_id = ?", id).Delete(&ds.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&medication).Error
	})
}
