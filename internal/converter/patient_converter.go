package converter

import (
	"strconv"
	"strings"
	"time"

	"dentist-dashboard/internal/delivery/dto"
	"dentist-dashboard/internal/domain/entity"
	"dentist-dashboard/pkg/storage"

	"github.com/sirupsen/logrus"
)

// DateLayout renders dates day first, e.g. 31/01/2024.
const DateLayout = "02/01/2006"

// ProfileToPatientDetail projects a patient profile into its display shape.
// It is total: any combination of missing optional fields yields a complete
// response. A malformed analysis payload is logged on log (when non-nil) and
// projected as "no analysis".
func ProfileToPatientDetail(profile *entity.Profile, photoBaseURL string, log logrus.FieldLogger) *dto.PatientDetailResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		ID:          profile.ID,
		FirstName:   name(profile.FirstName),
		LastName:    name(profile.LastName),
		FullName:    name(profile.FullName()),
		Gender:      text(profile.Gender),
		Pregnant:    yesNo(profile.Pregnant),
		PhoneNumber: text(profile.PhoneNumber),
		Birthday:    date(profile.Birthday),

		BloodTest:    uploaded(profile.BloodTest),
		BloodTestURL: reference(profile.BloodTest, ""),

		History: dto.HistoryView{
			LastDentistAppointment: date(profile.LastDentistAppointment),
			TeethRemoved:           yesNo(profile.TeethRemoved),
			Fillings:               yesNo(profile.Fillings),
			RootCanals:             yesNo(profile.RootCanals),
		},
		Symptoms: dto.SymptomsView{
			GumPain:           yesNo(profile.GumPain),
			GumBleed:          yesNo(profile.GumBleed),
			BadBreath:         yesNo(profile.BadBreath),
			LooseTeeth:        yesNo(profile.LooseTeeth),
			PusWhiteDischarge: yesNo(profile.PusWhiteDischarge),
			GumRecession:      yesNo(profile.GumRecession),
			TeethLonger:       yesNo(profile.TeethLonger),
			GapForm:           yesNo(profile.GapForm),
			ToothPain:         yesNo(profile.ToothPain),
			Sensitivity:       yesNo(profile.Sensitivity),
			Ulcer:             yesNo(profile.Ulcer),
			Inflammation:      yesNo(profile.Inflammation),
		},
		Lifestyle: dto.LifestyleView{
			Smoker:      yesNo(profile.Smoker),
			SmokerType:  text(profile.SmokerType),
			Alcohol:     yesNo(profile.Alcohol),
			AlcoholType: text(profile.AlcoholType),
			Diet:        yesNo(profile.Diet),
			DietType:    text(profile.DietType),
		},
		Hygiene: dto.HygieneView{
			Toothbrush:           text(profile.Toothbrush),
			Toothpaste:           text(profile.Toothpaste),
			Mouthwash:            yesNo(profile.Mouthwash),
			WeeklyFlossFrequency: number(profile.WeeklyFlossFrequency),
			WeeklyDailyBrush:     yesNo(profile.WeeklyDailyBrush),
		},
		Analysis: analysisView(profile, photoBaseURL, log),
	}
}

// ProfileToPatientSummary builds one entry of the patient list.
func ProfileToPatientSummary(profile *entity.Profile) dto.PatientSummaryResponse {
	return dto.PatientSummaryResponse{
		ID:           profile.ID,
		FirstName:    name(profile.FirstName),
		LastName:     name(profile.LastName),
		FullName:     name(profile.FullName()),
		HasAnalysis:  HasAnalysis(profile),
		LastAnalysis: date(profile.LastAnalysis),
	}
}

// ProfilesToPatientSummaries keeps the input order.
func ProfilesToPatientSummaries(profiles []entity.Profile) []dto.PatientSummaryResponse {
	summaries := make([]dto.PatientSummaryResponse, 0, len(profiles))
	for i := range profiles {
		summaries = append(summaries, ProfileToPatientSummary(&profiles[i]))
	}
	return summaries
}

func ProfileToClinician(profile *entity.Profile) dto.ClinicianResponse {
	return dto.ClinicianResponse{
		ID:        profile.ID,
		FirstName: name(profile.FirstName),
		LastName:  name(profile.LastName),
		FullName:  name(profile.FullName()),
	}
}

func analysisView(profile *entity.Profile, photoBaseURL string, log logrus.FieldLogger) dto.AnalysisView {
	view := dto.AnalysisView{
		Score:        dto.NotAvailable,
		Analysis:     dto.NotAvailable,
		Causes:       []string{},
		Suggestions:  []string{},
		LastAnalysis: date(profile.LastAnalysis),
		Photo:        uploaded(profile.PhotoAnalyzed),
		PhotoURL:     reference(profile.PhotoAnalyzed, photoBaseURL),
	}

	result, err := ParseAnalysisResult(profile.AnalysisResult)
	if err != nil {
		if log != nil {
			log.WithField("patient_id", profile.ID).Warnf("Failed to parse analysis result: %+v", err)
		}
		return view
	}
	if result == nil {
		return view
	}

	view.Available = true
	if result.Score.Valid {
		view.Score = result.Score.Decimal.String()
	}
	if strings.TrimSpace(result.Analysis) != "" {
		view.Analysis = result.Analysis
	}
	view.Causes = result.Causes
	view.Suggestions = result.Suggestions
	return view
}

// HasAnalysis reports whether the stored analysis would project as available.
// It agrees with ProfileToPatientDetail for every payload and never logs.
func HasAnalysis(profile *entity.Profile) bool {
	result, err := ParseAnalysisResult(profile.AnalysisResult)
	return err == nil && result != nil
}

func name(s string) string {
	if strings.TrimSpace(s) == "" {
		return dto.NotAvailable
	}
	return s
}

func text(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return dto.NotAvailable
	}
	return *s
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return dto.NotAvailable
	case *b:
		return dto.Yes
	default:
		return dto.No
	}
}

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return dto.NotAvailable
	}
	return t.Format(DateLayout)
}

func number(n *int) string {
	if n == nil {
		return dto.NotAvailable
	}
	return strconv.Itoa(*n)
}

func uploaded(ref *string) string {
	if ref == nil || strings.TrimSpace(*ref) == "" {
		return dto.NotUploaded
	}
	return dto.Uploaded
}

func reference(ref *string, baseURL string) string {
	if ref == nil {
		return dto.NotAvailable
	}
	if u := storage.PublicURL(baseURL, *ref); u != "" {
		return u
	}
	return dto.NotAvailable
}
