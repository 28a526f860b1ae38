package services

import (
	"context"
	"time"

	"github.com/campushire/jobboard/internal/logger"
	"github.com/campushire/jobboard/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type expiredJobsRepository interface {
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobsCloser closes postings whose deadline has passed. Closing is one way:
// the sweep only ever sets the closed flag, nothing reopens a job.
type JobsCloser struct {
	jobs expiredJobsRepository
	cron *cron.Cron
}

func NewJobsCloser(jobs expiredJobsRepository) (*JobsCloser, error) {

	jc := &JobsCloser{
		jobs: jobs,
		cron: cron.New(),
	}

	_, err := jc.cron.AddFunc("0 * * * *", jc.closeExpiredJobs)
	if err != nil {
		return nil, err
	}

	jc.closeExpiredJobs()
	jc.cron.Start()
	log.Info("jobs closer started")
	return jc, nil
}

func (jc *JobsCloser) Stop() {
	jc.cron.Stop()
}

func (jc *JobsCloser) closeExpiredJobs() {
	rowsAffected, err := jc.jobs.CloseExpired(context.Background(), time.Now())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to close expired jobs: %v", err)
		return
	}
	if rowsAffected > 0 {
		metrics.JobsAutoClosedCounter.Add(float64(rowsAffected))
		log.Infof("closed %v jobs past their deadline", rowsAffected)
	}
}
