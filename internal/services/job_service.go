package services

import (
	"context"
	"time"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type jobRepository interface {
	Add(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	Update(ctx context.Context, job *entities.Job) error
	Search(ctx context.Context, filter repositories.JobFilter) ([]entities.Job, int64, error)
	GetByOwner(ctx context.Context, ownerID string) ([]entities.Job, error)
}

type JobQuery struct {
	Keyword  string
	Location string
	JobType  string
	OwnerID  string
	IsClosed *bool
	Page     int
	Limit    int
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type JobInput struct {
	Title        string
	Description  string
	Location     string
	SalaryFrom   *int
	SalaryTo     *int
	JobType      string
	Requirements []string
	Benefits     []string
	Deadline     *time.Time
}

type JobService struct {
	jobs jobRepository
}

func NewJobService(jobs jobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// List runs a filtered job search. Out-of-range paging values are clamped
// rather than rejected, so a crawler asking for page -1 or limit 10000 gets
// a sane page instead of an error.
func (s *JobService) List(ctx context.Context, query JobQuery) ([]entities.Job, PageMeta, error) {

	filter := repositories.JobFilter{
		Keyword:  query.Keyword,
		Location: query.Location,
		OwnerID:  query.OwnerID,
		IsClosed: query.IsClosed,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	if query.JobType != "" {
		jobType, ok := entities.ToJobType(query.JobType)
		if !ok {
			return nil, PageMeta{}, apperrors.Validation("job type must be one of fulltime, parttime, intern")
		}
		filter.JobType = jobType
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	jobs, total, err := s.jobs.Search(ctx, filter)
	if err != nil {
		return nil, PageMeta{}, err
	}

	meta := PageMeta{
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}
	return jobs, meta, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*entities.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, ownerID string, input JobInput) (*entities.Job, error) {

	jobType, err := validateJobInput(input)
	if err != nil {
		return nil, err
	}

	job := entities.NewJob(ownerID, input.Title, input.Description, input.Location, jobType)
	job.SalaryFrom = input.SalaryFrom
	job.SalaryTo = input.SalaryTo
	job.SetRequirements(input.Requirements)
	job.SetBenefits(input.Benefits)
	job.Deadline = input.Deadline

	if err := s.jobs.Add(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, callerID, jobID string, input JobInput) (*entities.Job, error) {

	job, err := s.ownedJob(ctx, callerID, jobID)
	if err != nil {
		return nil, err
	}

	jobType, err := validateJobInput(input)
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Location = input.Location
	job.SalaryFrom = input.SalaryFrom
	job.SalaryTo = input.SalaryTo
	job.JobType = jobType
	job.SetRequirements(input.Requirements)
	job.SetBenefits(input.Benefits)
	job.Deadline = input.Deadline

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Close is the delete operation: the posting stays in the store but stops
// accepting applications. Closing an already closed job is a no-op.
func (s *JobService) Close(ctx context.Context, callerID, jobID string) (*entities.Job, error) {

	job, err := s.ownedJob(ctx, callerID, jobID)
	if err != nil {
		return nil, err
	}

	if !job.IsClosed {
		job.IsClosed = true
		if err := s.jobs.Update(ctx, job); err != nil {
			return nil, err
		}
	}
	return job, nil
}

func (s *JobService) ListByOwner(ctx context.Context, ownerID string) ([]entities.Job, error) {
	return s.jobs.GetByOwner(ctx, ownerID)
}

func (s *JobService) ownedJob(ctx context.Context, callerID, jobID string) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != callerID {
		return nil, apperrors.Forbidden("you do not own this job")
	}
	return job, nil
}

func validateJobInput(input JobInput) (entities.JobType, error) {
	jobType := entities.FullTime
	if input.JobType != "" {
		parsed, ok := entities.ToJobType(input.JobType)
		if !ok {
			return "", apperrors.Validation("job type must be one of fulltime, parttime, intern")
		}
		jobType = parsed
	}
	if input.Title == "" {
		return "", apperrors.Validation("title is required")
	}
	if input.SalaryFrom != nil && input.SalaryTo != nil && *input.SalaryFrom > *input.SalaryTo {
		return "", apperrors.Validation("salary range lower bound exceeds upper bound")
	}
	return jobType, nil
}
