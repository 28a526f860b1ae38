package repositories

import (
	"context"
	"time"

	"github.com/campushire/jobboard/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

// CachedJobs is a read-through decorator over the jobs repository. Job
// detail pages are the hottest read path and tolerate a short staleness
// window; every write through this type invalidates the affected entry.
type CachedJobs struct {
	repo  *Jobs
	cache *gocache.Cache
}

func NewCachedJobs(repo *Jobs) *CachedJobs {
	return &CachedJobs{repo: repo, cache: gocache.New(2*time.Minute, 5*time.Minute)}
}

func (c *CachedJobs) Add(ctx context.Context, job *entities.Job) error {
	return c.repo.Add(ctx, job)
}

func (c *CachedJobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	if value, found := c.cache.Get(id); found {
		job := value.(entities.Job)
		return &job, nil
	}

	job, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.Set(id, *job, gocache.DefaultExpiration)
	return job, nil
}

func (c *CachedJobs) Update(ctx context.Context, job *entities.Job) error {
	err := c.repo.Update(ctx, job)
	if err == nil {
		c.cache.Delete(job.ID)
	}
	return err
}

func (c *CachedJobs) Search(ctx context.Context, filter JobFilter) ([]entities.Job, int64, error) {
	return c.repo.Search(ctx, filter)
}

func (c *CachedJobs) GetByOwner(ctx context.Context, ownerID string) ([]entities.Job, error) {
	return c.repo.GetByOwner(ctx, ownerID)
}

func (c *CachedJobs) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	rows, err := c.repo.CloseExpired(ctx, now)
	if err == nil && rows > 0 {
		c.cache.Flush()
	}
	return rows, err
}
