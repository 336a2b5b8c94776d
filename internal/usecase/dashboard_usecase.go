package usecase

import (
	"context"

	"dentist-dashboard/internal/converter"
	"dentist-dashboard/internal/delivery/dto"
	"dentist-dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, caller entity.Caller) (*dto.DashboardResponse, error)
	GetPatient(ctx context.Context, caller entity.Caller, patientID uuid.UUID) (*dto.PatientDetailResponse, error)
}

type dashboardUsecase struct {
	log           *logrus.Logger
	accessUsecase AccessUsecase
	photoBaseURL  string
}

func NewDashboardUsecase(log *logrus.Logger, accessUsecase AccessUsecase, photoBaseURL string) DashboardUsecase {
	return &dashboardUsecase{
		log:           log,
		accessUsecase: accessUsecase,
		photoBaseURL:  photoBaseURL,
	}
}

// GetDashboard returns the caller's header and patient list. An empty list is
// a normal outcome, distinct from a store failure.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, caller entity.Caller) (*dto.DashboardResponse, error) {
	session, err := u.openSession(ctx, caller)
	if err != nil {
		return nil, err
	}
	return session.Dashboard(), nil
}

// GetPatient resolves access and selects one patient from the authorized set.
// Patients outside the caller's assignments are reported as ErrPatientNotFound.
func (u *dashboardUsecase) GetPatient(ctx context.Context, caller entity.Caller, patientID uuid.UUID) (*dto.PatientDetailResponse, error) {
	session, err := u.openSession(ctx, caller)
	if err != nil {
		return nil, err
	}

	detail, ok := session.Select(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return detail, nil
}

func (u *dashboardUsecase) openSession(ctx context.Context, caller entity.Caller) (*DashboardSession, error) {
	access, err := u.accessUsecase.ResolveAccess(ctx, caller)
	if err != nil {
		return nil, err
	}

	// the caller left while we were loading; drop the result
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewDashboardSession(access, u.photoBaseURL, u.log), nil
}

// DashboardSession holds one caller's resolved patients for the duration of
// a request. It is never shared between callers and does no I/O. Details are
// projected only for the patient that is selected.
type DashboardSession struct {
	clinician    dto.ClinicianResponse
	patients     []entity.Profile
	index        map[uuid.UUID]int
	photoBaseURL string
	log          logrus.FieldLogger
}

func NewDashboardSession(access *entity.ResolvedAccess, photoBaseURL string, log logrus.FieldLogger) *DashboardSession {
	s := &DashboardSession{
		clinician:    converter.ProfileToClinician(access.CallerProfile),
		patients:     access.Patients,
		index:        make(map[uuid.UUID]int, len(access.Patients)),
		photoBaseURL: photoBaseURL,
		log:          log,
	}
	for i := range access.Patients {
		if _, ok := s.index[access.Patients[i].ID]; !ok {
			s.index[access.Patients[i].ID] = i
		}
	}
	return s
}

func (s *DashboardSession) Dashboard() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Clinician: s.clinician,
		Patients:  converter.ProfilesToPatientSummaries(s.patients),
		Total:     len(s.patients),
	}
}

// Select projects the patient with the given id.
func (s *DashboardSession) Select(patientID uuid.UUID) (*dto.PatientDetailResponse, bool) {
	i, ok := s.index[patientID]
	if !ok {
		return nil, false
	}
	return converter.ProfileToPatientDetail(&s.patients[i], s.photoBaseURL, s.log), true
}
