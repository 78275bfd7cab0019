package main

import (
	"fmt"
	"log"
	"time"

	"medtracker/internal/app/ds"
	"medtracker/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	db.Exec("DELETE FROM assignments")
	db.Exec("DELETE FROM patients")
	db.Exec("DELETE FROM medications")

	patients := []ds.Patient{
		{Name: "John Doe", DateOfBirth: date(1985, time.March, 12)},
		{Name: "Jane Smith", DateOfBirth: date(1992, time.July, 4)},
		{Name: "Robert Brown", DateOfBirth: date(1957, time.November, 30)},
	}
	for i := range patients {
		db.Create(&patients[i])
		fmt.Printf("Created patient: %s\n", patients[i].Name)
	}

	medications := []ds.Medication{
		{Name: "Aspirin", Dosage: "100mg", Frequency: "twice daily"},
		{Name: "Amoxicillin", Dosage: "500mg", Frequency: "three times daily"},
		{Name: "Vitamin D", Dosage: "25mcg", Frequency: "once daily"},
		{Name: "Ibuprofen", Dosage: "200mg", Frequency: "as needed"},
	}
	for i := range medications {
		db.Create(&medications[i])
		fmt.Printf("Created medication: %s %s\n", medications[i].Name, medications[i].Dosage)
	}

	today := time.Now()
	assignments := []ds.Assignment{
		{PatientID: patients[0].ID, MedicationID: medications[0].ID, StartDate: today.AddDate(0, 0, -5), Days: 10},
		{PatientID: patients[0].ID, MedicationID: medications[2].ID, StartDate: today, Days: 30},
		{PatientID: patients[1].ID, MedicationID: medications[1].ID, StartDate: today.AddDate(0, 0, -2), Days: 7},
		{PatientID: patients[2].ID, MedicationID: medications[3].ID, StartDate: today.AddDate(0, 0, 3), Days: 5},
	}
	for i := range assignments {
		db.Omit("Patient", "Medication").Create(&assignments[i])
	}

	fmt.Println("\nSeeding finished")
	fmt.Printf("%d patients, %d medications, %d assignments\n", len(patients), len(medications), len(assignments))
}
