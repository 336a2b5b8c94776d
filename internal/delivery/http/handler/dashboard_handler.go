package handler

import (
	"context"
	"errors"
	"net/http"

	"dentist-dashboard/internal/delivery/http/middleware"
	"dentist-dashboard/internal/usecase"
	"dentist-dashboard/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	msgNoPatients     = "No patients assigned yet."
	msgPatientsFailed = "Could not load patients"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	log              *logrus.Logger
	loginURL         string
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, log *logrus.Logger, loginURL string) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		log:              log,
		loginURL:         loginURL,
	}
}

// GetDashboard returns the clinician header and assigned patients
// @Summary Get dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Redirect(w, http.StatusUnauthorized, "Caller identity unavailable", h.loginURL)
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message := "Dashboard retrieved successfully"
	if dashboard.Total == 0 {
		message = msgNoPatients
	}

	response.SuccessWithMeta(w, http.StatusOK, message, dashboard, &response.Meta{Total: dashboard.Total})
}

// GetPatient returns one assigned patient's full record
// @Summary Get patient detail
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/patients/{id} [get]
func (h *DashboardHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Redirect(w, http.StatusUnauthorized, "Caller identity unavailable", h.loginURL)
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.dashboardUsecase.GetPatient(r.Context(), caller, patientID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// client is gone, nothing to write
		h.log.Debugf("Dashboard request cancelled: %v", err)
	case usecase.IsTerminal(err):
		response.Redirect(w, http.StatusUnauthorized, err.Error(), h.loginURL)
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrStoreUnavailable):
		h.log.Warnf("Failed to load patients: %+v", err)
		response.ServiceUnavailable(w, msgPatientsFailed)
	default:
		h.log.Errorf("Failed to load dashboard: %+v", err)
		response.InternalServerError(w, msgPatientsFailed)
	}
}
