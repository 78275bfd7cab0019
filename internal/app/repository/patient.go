package repository

import (
	"medtracker/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) ListPatients(name string) ([]ds.Patient, error) {
	var patients []ds.Patient
	q := r.db.Order("id")
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+name+"%")
	}
	if err := q.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *Repository) GetPatient(id uint) (*ds.Patient, error) {
	var patient ds.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *Repository) CreatePatient(p *ds.Patient) error {
	return r.db.Create(p).Error
}

func (r *Repository) UpdatePatient(id uint, fields map[string]interface{}) (*ds.Patient, error) {
	if err := r.db.First(&ds.Patient{}, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&ds.Patient{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetPatient(id)
}

// DeletePatient removes the patient together with every assignment that
// references it. The child delete is explicit so the cascade holds even
// against a schema created without the FK constraints.
func (r *Repository) DeletePatient(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var patient ds.Patient
		if err := tx.First(&patient, id).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&ds.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
}
