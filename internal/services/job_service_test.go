package services

import (
	"context"
	"testing"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_ListJobs_ComputesPaginationMeta(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("Search", mock.Anything, mock.MatchedBy(func(f repositories.JobFilter) bool {
		return f.Page == 2 && f.Limit == 5
	})).Return(make([]entities.Job, 5), int64(12), nil)

	service := NewJobService(jobs)
	result, meta, err := service.List(context.Background(), JobQuery{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Len(t, result, 5)
	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func Test_ListJobs_ClampsPageAndLimit(t *testing.T) {

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 20, 1, 20},
		{"limit above cap", 1, 10000, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &mockJobs{}
			jobs.On("Search", mock.Anything, mock.MatchedBy(func(f repositories.JobFilter) bool {
				return f.Page == tt.wantPage && f.Limit == tt.wantLimit
			})).Return([]entities.Job{}, int64(0), nil)

			service := NewJobService(jobs)
			_, meta, err := service.List(context.Background(), JobQuery{Page: tt.page, Limit: tt.limit})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, meta.Page)
			assert.Equal(t, tt.wantLimit, meta.Limit)
			jobs.AssertExpectations(t)
		})
	}
}

func Test_ListJobs_UnknownJobType_Fails(t *testing.T) {

	service := NewJobService(&mockJobs{})
	_, _, err := service.List(context.Background(), JobQuery{JobType: "freelance"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func Test_CreateJob_ValidatesSalaryRange(t *testing.T) {

	from, to := 5000, 3000
	service := NewJobService(&mockJobs{})

	_, err := service.Create(context.Background(), "employer-1", JobInput{
		Title:      "Backend engineer",
		SalaryFrom: &from,
		SalaryTo:   &to,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func Test_CreateJob_DefaultsToFullTime(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("Add", mock.Anything, mock.MatchedBy(func(j *entities.Job) bool {
		return j.JobType == entities.FullTime && j.OwnerID == "employer-1"
	})).Return(nil).Once()

	service := NewJobService(jobs)
	job, err := service.Create(context.Background(), "employer-1", JobInput{
		Title:        "Backend engineer",
		Requirements: []string{"Go", "SQL"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, job.RequirementsAsArray())
	jobs.AssertExpectations(t)
}

func Test_UpdateJob_OnlyOwnerMay(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "job-1").
		Return(&entities.Job{ID: "job-1", OwnerID: "employer-1", Title: "old"}, nil)

	service := NewJobService(jobs)
	_, err := service.Update(context.Background(), "employer-2", "job-1", JobInput{Title: "new"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func Test_CloseJob_IsSoftAndIdempotent(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "job-1").
		Return(&entities.Job{ID: "job-1", OwnerID: "employer-1"}, nil).Once()
	jobs.On("Update", mock.Anything, mock.MatchedBy(func(j *entities.Job) bool {
		return j.IsClosed
	})).Return(nil).Once()

	service := NewJobService(jobs)
	job, err := service.Close(context.Background(), "employer-1", "job-1")

	require.NoError(t, err)
	assert.True(t, job.IsClosed)

	// already closed: no second write
	jobs.On("GetByID", mock.Anything, "job-1").
		Return(&entities.Job{ID: "job-1", OwnerID: "employer-1", IsClosed: true}, nil).Once()
	_, err = service.Close(context.Background(), "employer-1", "job-1")

	require.NoError(t, err)
	jobs.AssertExpectations(t)
}
