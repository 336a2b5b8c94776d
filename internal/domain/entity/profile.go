package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a person record shared by dentists and patients. Patient
// profiles carry the clinical intake answers and, once the gum-health
// analysis has run, its serialized result and photo reference.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" validate:"required"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	IsDentist bool      `gorm:"not null;default:false;index" json:"is_dentist"`

	// Demographics
	Gender      *string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Pregnant    *bool      `json:"pregnant,omitempty"`
	PhoneNumber *string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Birthday    *time.Time `gorm:"type:date" json:"birthday,omitempty"`

	// Documents and history
	BloodTest              *string    `gorm:"type:text" json:"blood_test,omitempty"`
	LastDentistAppointment *time.Time `gorm:"type:date" json:"last_dentist_appointment,omitempty"`
	TeethRemoved           *bool      `json:"teeth_removed,omitempty"`
	Fillings               *bool      `json:"fillings,omitempty"`
	RootCanals             *bool      `json:"root_canals,omitempty"`

	// Symptoms
	GumPain           *bool `json:"gum_pain,omitempty"`
	GumBleed          *bool `json:"gum_bleed,omitempty"`
	BadBreath         *bool `json:"bad_breath,omitempty"`
	LooseTeeth        *bool `json:"loose_teeth,omitempty"`
	PusWhiteDischarge *bool `json:"pus_white_discharge,omitempty"`
	GumRecession      *bool `json:"gum_recession,omitempty"`
	TeethLonger       *bool `json:"teeth_longer,omitempty"`
	GapForm           *bool `json:"gap_form,omitempty"`
	ToothPain         *bool `json:"tooth_pain,omitempty"`
	Sensitivity       *bool `json:"sensitivity,omitempty"`
	Ulcer             *bool `json:"ulcer,omitempty"`
	Inflammation      *bool `json:"inflammation,omitempty"`

	// Lifestyle
	Smoker      *bool   `json:"smoker,omitempty"`
	SmokerType  *string `gorm:"type:text" json:"smoker_type,omitempty"`
	Alcohol     *bool   `json:"alcohol,omitempty"`
	AlcoholType *string `gorm:"type:text" json:"alcohol_type,omitempty"`
	Diet        *bool   `json:"diet,omitempty"`
	DietType    *string `gorm:"type:text" json:"diet_type,omitempty"`

	// Hygiene
	Toothbrush           *string `gorm:"type:text" json:"toothbrush,omitempty"`
	Toothpaste           *string `gorm:"type:text" json:"toothpaste,omitempty"`
	Mouthwash            *bool   `json:"mouthwash,omitempty"`
	WeeklyFlossFrequency *int    `json:"weekly_floss_frequency,omitempty" validate:"omitempty,gte=0"`
	WeeklyDailyBrush     *bool   `json:"weekly_daily_brush,omitempty"`

	// Analysis. AnalysisResult holds the JSON document written by the
	// analysis pipeline; the most recent run overwrites the previous one.
	AnalysisResult *string    `gorm:"type:text" json:"analysis_result,omitempty"`
	LastAnalysis   *time.Time `json:"last_analysis,omitempty"`
	PhotoAnalyzed  *string    `gorm:"type:text" json:"photo_analyzed,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profile"
}

// FullName joins first and last name, skipping whichever is empty.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
