package repositories

import (
	"context"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfilesRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

func (repo *Profiles) AddStudent(ctx context.Context, profile *entities.StudentProfile) error {
	err := repo.db.WithContext(ctx).Create(profile).Error
	if isDuplicateKeyError(err) {
		return apperrors.Conflict("student profile already exists")
	}
	return err
}

func (repo *Profiles) AddEmployer(ctx context.Context, profile *entities.EmployerProfile) error {
	err := repo.db.WithContext(ctx).Create(profile).Error
	if isDuplicateKeyError(err) {
		return apperrors.Conflict("employer profile already exists")
	}
	return err
}

func (repo *Profiles) GetStudentByUser(ctx context.Context, userID string) (*entities.StudentProfile, error) {
	var profile entities.StudentProfile
	err := repo.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("student profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) GetEmployerByUser(ctx context.Context, userID string) (*entities.EmployerProfile, error) {
	var profile entities.EmployerProfile
	err := repo.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("employer profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) UpdateStudent(ctx context.Context, profile *entities.StudentProfile) error {
	return repo.db.WithContext(ctx).Save(profile).Error
}

func (repo *Profiles) UpdateEmployer(ctx context.Context, profile *entities.EmployerProfile) error {
	return repo.db.WithContext(ctx).Save(profile).Error
}
