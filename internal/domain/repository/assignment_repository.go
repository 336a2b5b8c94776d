package repository

import (
	"context"

	"dentist-dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	FindByDentistID(ctx context.Context, db *gorm.DB, dentistID uuid.UUID) ([]entity.Assignment, error)
}
