package ds

import "time"

type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"dateOfBirth"`

	Assignments []Assignment `gorm:"foreignKey:PatientID" json:"assignments,omitempty"`
}
