package handler

import (
	"context"

	"dentist-dashboard/internal/delivery/dto"
	"dentist-dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockDashboardUsecase struct {
	mock.Mock
}

func (m *mockDashboardUsecase) GetDashboard(ctx context.Context, caller entity.Caller) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, caller)
	if v := args.Get(0); v != nil {
		return v.(*dto.DashboardResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDashboardUsecase) GetPatient(ctx context.Context, caller entity.Caller, patientID uuid.UUID) (*dto.PatientDetailResponse, error) {
	args := m.Called(ctx, caller, patientID)
	if v := args.Get(0); v != nil {
		return v.(*dto.PatientDetailResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.TokenResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, caller entity.Caller, accessTokenID string, refreshToken string) error {
	return m.Called(ctx, caller, accessTokenID, refreshToken).Error(0)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.TokenResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, caller entity.Caller) (*dto.UserResponse, error) {
	args := m.Called(ctx, caller)
	if v := args.Get(0); v != nil {
		return v.(*dto.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
