package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentist-dashboard/internal/delivery/dto"
	"dentist-dashboard/internal/delivery/http/middleware"
	"dentist-dashboard/internal/domain/entity"
	"dentist-dashboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		RedirectTo string `json:"redirect_to"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newDashboardHandler(uc *mockDashboardUsecase) *DashboardHandler {
	log, _ := test.NewNullLogger()
	return NewDashboardHandler(uc, log, "/login")
}

func authedRequest(method, target string, caller entity.Caller) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middleware.WithCaller(req.Context(), caller, "token-id"))
}

func TestGetDashboard_ListsPatients(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New(), Email: "dr@clinic.test"}
	dashboard := &dto.DashboardResponse{
		Clinician: dto.ClinicianResponse{ID: caller.ID, FullName: "Ana Silva"},
		Patients:  []dto.PatientSummaryResponse{{ID: uuid.New(), FullName: "Bo Chen"}},
		Total:     1,
	}
	uc.On("GetDashboard", mock.Anything, caller).Return(dashboard, nil)

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetDashboard(rec, authedRequest(http.MethodGet, "/api/v1/dashboard", caller))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Dashboard retrieved successfully", body.Message)

	var got dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "Bo Chen", got.Patients[0].FullName)
	uc.AssertExpectations(t)
}

func TestGetDashboard_EmptyListIsNotAFailure(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}
	uc.On("GetDashboard", mock.Anything, caller).
		Return(&dto.DashboardResponse{Patients: []dto.PatientSummaryResponse{}}, nil)

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetDashboard(rec, authedRequest(http.MethodGet, "/api/v1/dashboard", caller))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "No patients assigned yet.", body.Message)
	assert.JSONEq(t, `{"clinician":{"id":"00000000-0000-0000-0000-000000000000","first_name":"","last_name":"","full_name":""},"patients":[],"total":0}`, string(body.Data))
}

func TestGetDashboard_TerminalErrorsRedirectToLogin(t *testing.T) {
	for _, err := range []error{usecase.ErrProfileNotFound, usecase.ErrAccessDenied, usecase.ErrIdentityUnavailable} {
		uc := new(mockDashboardUsecase)
		caller := entity.Caller{ID: uuid.New()}
		uc.On("GetDashboard", mock.Anything, caller).Return(nil, err)

		rec := httptest.NewRecorder()
		newDashboardHandler(uc).GetDashboard(rec, authedRequest(http.MethodGet, "/api/v1/dashboard", caller))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, err.Error())
		assert.Equal(t, "/login", decodeEnvelope(t, rec).Error.RedirectTo)
	}
}

func TestGetDashboard_MissingCallerRedirects(t *testing.T) {
	uc := new(mockDashboardUsecase)

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", decodeEnvelope(t, rec).Error.RedirectTo)
	uc.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
}

func TestGetDashboard_StoreFailureIsDistinctFromEmpty(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}
	storeErr := &usecase.StoreError{Step: usecase.StepPatients, Err: errors.New("connection refused")}
	uc.On("GetDashboard", mock.Anything, caller).Return(nil, storeErr)

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetDashboard(rec, authedRequest(http.MethodGet, "/api/v1/dashboard", caller))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Could not load patients", body.Message)
}

func TestGetDashboard_CancelledRequestWritesNothing(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}
	uc.On("GetDashboard", mock.Anything, caller).Return(nil, context.Canceled)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := authedRequest(http.MethodGet, "/api/v1/dashboard", caller).WithContext(
		middleware.WithCaller(ctx, caller, "token-id"),
	)

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetDashboard(rec, req)

	assert.Zero(t, rec.Body.Len())
}

func TestGetPatient_SelectsAssignedPatient(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}
	patientID := uuid.New()
	uc.On("GetPatient", mock.Anything, caller, patientID).
		Return(&dto.PatientDetailResponse{ID: patientID, FullName: "Bo Chen", Gender: dto.NotAvailable}, nil)

	req := authedRequest(http.MethodGet, "/api/v1/dashboard/patients/"+patientID.String(), caller)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetPatient(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got dto.PatientDetailResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, patientID, got.ID)
	assert.Equal(t, "N/A", got.Gender)
}

func TestGetPatient_UnassignedPatientIsNotFound(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}
	patientID := uuid.New()
	uc.On("GetPatient", mock.Anything, caller, patientID).Return(nil, usecase.ErrPatientNotFound)

	req := authedRequest(http.MethodGet, "/api/v1/dashboard/patients/"+patientID.String(), caller)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetPatient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPatient_RejectsMalformedID(t *testing.T) {
	uc := new(mockDashboardUsecase)
	caller := entity.Caller{ID: uuid.New()}

	req := authedRequest(http.MethodGet, "/api/v1/dashboard/patients/abc", caller)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	rec := httptest.NewRecorder()
	newDashboardHandler(uc).GetPatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetPatient", mock.Anything, mock.Anything, mock.Anything)
}
