package repository

import (
	"context"
	"errors"
	"fmt"

	"dentist-dashboard/internal/domain/entity"
	domainRepo "dentist-dashboard/internal/domain/repository"
	"dentist-dashboard/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	validator *validator.CustomValidator
}

func NewProfileRepository(validator *validator.CustomValidator) domainRepo.ProfileRepository {
	return &profileRepository{validator: validator}
}

func (r *profileRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.check(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByIDs loads every profile whose id is in ids with a single query.
// Rows come back in the store's natural order.
func (r *profileRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Profile, error) {
	if len(ids) == 0 {
		return []entity.Profile{}, nil
	}

	var profiles []entity.Profile
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := r.check(&profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (r *profileRepository) check(profile *entity.Profile) error {
	if err := r.validator.Validate(profile); err != nil {
		return fmt.Errorf("%w: profile %s: %v", domainRepo.ErrMalformedRecord, profile.ID, err)
	}
	return nil
}
