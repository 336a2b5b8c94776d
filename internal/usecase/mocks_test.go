package usecase

import (
	"context"
	"time"

	"dentist-dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, db, id)
	profile, _ := args.Get(0).(*entity.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Profile, error) {
	args := m.Called(ctx, db, ids)
	profiles, _ := args.Get(0).([]entity.Profile)
	return profiles, args.Error(1)
}

type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID uuid.UUID) ([]entity.Assignment, error) {
	args := m.Called(ctx, db, dentistID)
	assignments, _ := args.Get(0).([]entity.Assignment)
	return assignments, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(ctx, db, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockAccessUsecase struct {
	mock.Mock
}

func (m *mockAccessUsecase) ResolveAccess(ctx context.Context, caller entity.Caller) (*entity.ResolvedAccess, error) {
	args := m.Called(ctx, caller)
	access, _ := args.Get(0).(*entity.ResolvedAccess)
	return access, args.Error(1)
}

// memoryTokenStore keeps token keys in a map.
type memoryTokenStore struct {
	keys map[string]time.Duration
	err  error
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{keys: map[string]time.Duration{}}
}

func (s *memoryTokenStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if s.err != nil {
		return redis.NewStatusResult("", s.err)
	}
	s.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *memoryTokenStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := s.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *memoryTokenStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := s.keys[k]; ok {
			delete(s.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}
