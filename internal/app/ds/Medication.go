package ds

type Medication struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Dosage    string `gorm:"type:varchar(50);not null" json:"dosage"`
	Frequency string `gorm:"type:varchar(100);not null" json:"frequency"`
	ImageKey  string `gorm:"type:varchar(200)" json:"image_key,omitempty"`

	Assignments []Assignment `gorm:"foreignKey:MedicationID" json:"assignments,omitempty"`
}
