package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// JobFilter describes a job listing query. Zero-valued fields put no
// constraint on the result; set fields are AND-combined.
type JobFilter struct {
	Keyword  string
	Location string
	JobType  entities.JobType
	OwnerID  string
	IsClosed *bool
	Page     int
	Limit    int
}

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	var job entities.Job
	err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) Update(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Save(job).Error
}

func (repo *Jobs) Search(ctx context.Context, filter JobFilter) ([]entities.Job, int64, error) {

	query := repo.db.WithContext(ctx).Model(&entities.Job{})
	query = applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []entities.Job
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (repo *Jobs) GetByOwner(ctx context.Context, ownerID string) ([]entities.Job, error) {
	var jobs []entities.Job
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// CloseExpired closes open jobs whose deadline has passed. Closing is one
// way only; nothing ever reopens a job.
func (repo *Jobs) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Where("is_closed = ? AND deadline IS NOT NULL AND deadline < ?", false, now).
		Update("is_closed", true)
	return res.RowsAffected, res.Error
}

func applyFilter(query *gorm.DB, filter JobFilter) *gorm.DB {

	if filter.Keyword != "" {
		pattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.IsClosed != nil {
		query = query.Where("is_closed = ?", *filter.IsClosed)
	}

	return query
}
