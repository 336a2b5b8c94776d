package repository

import (
	"context"
	"fmt"

	"dentist-dashboard/internal/domain/entity"
	domainRepo "dentist-dashboard/internal/domain/repository"
	"dentist-dashboard/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assignmentRepository struct {
	validator *validator.CustomValidator
}

func NewAssignmentRepository(validator *validator.CustomValidator) domainRepo.AssignmentRepository {
	return &assignmentRepository{validator: validator}
}

func (r *assignmentRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID uuid.UUID) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	err := db.WithContext(ctx).
		Select("id", "dentist_id", "patient_id", "created_at").
		Where("dentist_id = ?", dentistID).
		Order("id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if err := r.validator.Validate(&a); err != nil {
			return nil, fmt.Errorf("%w: assignment %d: %v", domainRepo.ErrMalformedRecord, a.ID, err)
		}
	}
	return assignments, nil
}
