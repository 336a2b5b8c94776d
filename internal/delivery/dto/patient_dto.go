package dto

import "github.com/google/uuid"

// Display sentinels shared by every projected field.
const (
	NotAvailable = "N/A"
	Yes          = "Yes"
	No           = "No"
	Uploaded     = "Uploaded"
	NotUploaded  = "Not Uploaded"
)

// PatientDetailResponse is the fully projected patient record. Every string
// field is always set; absent source values become NotAvailable.
type PatientDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Gender      string    `json:"gender"`
	Pregnant    string    `json:"pregnant"`
	PhoneNumber string    `json:"phone_number"`
	Birthday    string    `json:"birthday"`

	BloodTest    string `json:"blood_test"`
	BloodTestURL string `json:"blood_test_url"`

	History   HistoryView   `json:"history"`
	Symptoms  SymptomsView  `json:"symptoms"`
	Lifestyle LifestyleView `json:"lifestyle"`
	Hygiene   HygieneView   `json:"hygiene"`
	Analysis  AnalysisView  `json:"analysis"`
}

type HistoryView struct {
	LastDentistAppointment string `json:"last_dentist_appointment"`
	TeethRemoved           string `json:"teeth_removed"`
	Fillings               string `json:"fillings"`
	RootCanals             string `json:"root_canals"`
}

type SymptomsView struct {
	GumPain           string `json:"gum_pain"`
	GumBleed          string `json:"gum_bleed"`
	BadBreath         string `json:"bad_breath"`
	LooseTeeth        string `json:"loose_teeth"`
	PusWhiteDischarge string `json:"pus_white_discharge"`
	GumRecession      string `json:"gum_recession"`
	TeethLonger       string `json:"teeth_longer"`
	GapForm           string `json:"gap_form"`
	ToothPain         string `json:"tooth_pain"`
	Sensitivity       string `json:"sensitivity"`
	Ulcer             string `json:"ulcer"`
	Inflammation      string `json:"inflammation"`
}

type LifestyleView struct {
	Smoker      string `json:"smoker"`
	SmokerType  string `json:"smoker_type"`
	Alcohol     string `json:"alcohol"`
	AlcoholType string `json:"alcohol_type"`
	Diet        string `json:"diet"`
	DietType    string `json:"diet_type"`
}

type HygieneView struct {
	Toothbrush           string `json:"toothbrush"`
	Toothpaste           string `json:"toothpaste"`
	Mouthwash            string `json:"mouthwash"`
	WeeklyFlossFrequency string `json:"weekly_floss_frequency"`
	WeeklyDailyBrush     string `json:"weekly_daily_brush"`
}

// AnalysisView is the gum-health analysis. When no usable result exists,
// Available is false, the text fields are NotAvailable and the lists are
// empty (never null).
type AnalysisView struct {
	Available    bool     `json:"available"`
	Score        string   `json:"score"`
	Analysis     string   `json:"analysis"`
	Causes       []string `json:"causes"`
	Suggestions  []string `json:"suggestions"`
	LastAnalysis string   `json:"last_analysis"`
	Photo        string   `json:"photo"`
	PhotoURL     string   `json:"photo_url"`
}
