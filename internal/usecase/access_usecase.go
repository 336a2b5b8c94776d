package usecase

import (
	"context"
	"time"

	"dentist-dashboard/internal/domain/entity"
	"dentist-dashboard/internal/domain/repository"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AccessUsecase interface {
	ResolveAccess(ctx context.Context, caller entity.Caller) (*entity.ResolvedAccess, error)
}

type accessUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	profileRepo    repository.ProfileRepository
	assignmentRepo repository.AssignmentRepository
	storeTimeout   time.Duration
}

func NewAccessUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	assignmentRepo repository.AssignmentRepository,
	storeTimeout time.Duration,
) AccessUsecase {
	return &accessUsecase{
		db:             db,
		log:            log,
		profileRepo:    profileRepo,
		assignmentRepo: assignmentRepo,
		storeTimeout:   storeTimeout,
	}
}

// ResolveAccess checks that the caller is a dentist and loads every patient
// profile assigned to them.
//
// Flow:
// 1. Load the caller's profile (ErrProfileNotFound when missing)
// 2. Reject non-dentists with ErrAccessDenied before touching assignments
// 3. Load assignments and de-duplicate patient ids
// 4. Batch-load patient profiles in one query
//
// At most three store round trips are made regardless of patient count.
// Store failures are returned as *StoreError tagged with the failing step.
func (u *accessUsecase) ResolveAccess(ctx context.Context, caller entity.Caller) (*entity.ResolvedAccess, error) {
	if caller.ID == uuid.Nil {
		return nil, ErrIdentityUnavailable
	}

	// Step 1: caller profile
	var profile *entity.Profile
	err := u.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		profile, err = u.profileRepo.FindByID(ctx, u.db, caller.ID)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", caller.ID, err)
		return nil, &StoreError{Step: StepProfile, Err: err}
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	// Step 2: only dentists may see patients
	if !profile.IsDentist {
		u.log.Infof("Access denied for non-dentist %s", caller.ID)
		return nil, ErrAccessDenied
	}

	// Step 3: assigned patient ids
	var assignments []entity.Assignment
	err = u.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		assignments, err = u.assignmentRepo.FindByDentistID(ctx, u.db, caller.ID)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to load assignments for dentist %s: %+v", caller.ID, err)
		return nil, &StoreError{Step: StepAssignments, Err: err}
	}

	patientIDs := uniquePatientIDs(assignments)
	if len(patientIDs) == 0 {
		u.log.Debugf("No assigned patients for dentist %s", caller.ID)
		return &entity.ResolvedAccess{CallerProfile: profile, Patients: []entity.Profile{}}, nil
	}

	// Step 4: batch patient fetch
	var patients []entity.Profile
	err = u.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		patients, err = u.profileRepo.FindByIDs(ctx, u.db, patientIDs)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to load %d patient profiles for dentist %s: %+v", len(patientIDs), caller.ID, err)
		return nil, &StoreError{Step: StepPatients, Err: err}
	}
	if patients == nil {
		patients = []entity.Profile{}
	}

	for _, p := range patients {
		if p.IsDentist {
			u.log.Warnf("Dentist profile %s is assigned as a patient of %s", p.ID, caller.ID)
		}
	}

	return &entity.ResolvedAccess{CallerProfile: profile, Patients: patients}, nil
}

// withTimeout bounds a single store call. A caller that has already gone away
// surfaces as the context error wrapped by the store call.
func (u *accessUsecase) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	err := fn(callCtx)
	if err == nil && callCtx.Err() != nil {
		// the store ignored the deadline; do not hand back late results
		return callCtx.Err()
	}
	return err
}

// uniquePatientIDs keeps the first occurrence of each patient id, in
// assignment order.
func uniquePatientIDs(assignments []entity.Assignment) []uuid.UUID {
	seen := mapset.NewThreadUnsafeSetWithSize[uuid.UUID](len(assignments))
	ids := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		if seen.Add(a.PatientID) {
			ids = append(ids, a.PatientID)
		}
	}
	return ids
}
