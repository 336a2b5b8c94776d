package repository

import (
	"context"
	"errors"

	"dentist-dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMalformedRecord is wrapped by repositories when a row fails validation
// on its way out of the store.
var ErrMalformedRecord = errors.New("malformed record")

// ProfileRepository reads profiles. FindByID returns (nil, nil) when no row
// exists so callers can tell "not found" apart from a store failure.
type ProfileRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Profile, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Profile, error)
}
