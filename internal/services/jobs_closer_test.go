package services

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_JobsCloser_SweepsOnStart(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("CloseExpired", mock.Anything, mock.Anything).Return(int64(2), nil).Once()

	closer, err := NewJobsCloser(jobs)
	require.NoError(t, err)
	defer closer.Stop()

	jobs.AssertExpectations(t)
}
