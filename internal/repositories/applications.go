package repositories

import (
	"context"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	err := repo.db.WithContext(ctx).Create(application).Error
	if isDuplicateKeyError(err) {
		return apperrors.Conflict("you have already applied to this job")
	}
	return err
}

func (repo *Applications) GetByID(ctx context.Context, id string) (*entities.Application, error) {
	var application entities.Application
	err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {
	var application entities.Application
	err := repo.db.WithContext(ctx).
		First(&application, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID string) ([]entities.Application, error) {
	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus) error {
	return repo.db.WithContext(ctx).Model(&entities.Application{}).Where("id = ?", id).
		Update("status", status).Error
}
