package ds

import "time"

// Assignment links one patient to one medication for a fixed treatment
// window: Days of treatment starting on StartDate. StartDate is stored as a
// calendar date, time of day is dropped at the boundary.
type Assignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patientId"`
	MedicationID uint      `gorm:"not null;index" json:"medicationId"`
	StartDate    time.Time `gorm:"type:date;not null" json:"startDate"`
	Days         int       `gorm:"not null;check:days BETWEEN 1 AND 365" json:"days"`

	Patient    Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient"`
	Medication Medication `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"medication"`
}
