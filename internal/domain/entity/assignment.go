package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment authorizes a dentist to view a patient's profile.
// The relation is many-to-many and the (dentist, patient) pair is not
// guaranteed to be unique.
type Assignment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DentistID uuid.UUID `gorm:"type:uuid;not null;index" json:"dentist_id" validate:"required"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Assignment) TableName() string {
	return "assignment"
}
