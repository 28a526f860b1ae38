package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type JobType string

const (
	FullTime JobType = "fulltime"
	PartTime JobType = "parttime"
	Intern   JobType = "intern"
)

func ToJobType(s string) (JobType, bool) {
	switch JobType(strings.ToLower(strings.TrimSpace(s))) {
	case FullTime:
		return FullTime, true
	case PartTime:
		return PartTime, true
	case Intern:
		return Intern, true
	default:
		return "", false
	}
}

const listSeparator = "\n"

type Job struct {
	ID           string `gorm:"primaryKey"`
	OwnerID      string `gorm:"index:idx_jobs_owner_created,priority:1"`
	Title        string
	Description  string
	Location     string
	SalaryFrom   *int
	SalaryTo     *int
	JobType      JobType
	Requirements string
	Benefits     string
	Deadline     *time.Time
	IsClosed     bool
	CreatedAt    time.Time `gorm:"index:idx_jobs_owner_created,priority:2,sort:desc"`
	UpdatedAt    time.Time
}

func NewJob(ownerID, title, description, location string, jobType JobType) *Job {
	if jobType == "" {
		jobType = FullTime
	}
	return &Job{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Location:    strings.TrimSpace(location),
		JobType:     jobType,
	}
}

func (j *Job) RequirementsAsArray() []string {
	return splitList(j.Requirements)
}

func (j *Job) SetRequirements(items []string) {
	j.Requirements = joinList(items)
}

func (j *Job) BenefitsAsArray() []string {
	return splitList(j.Benefits)
}

func (j *Job) SetBenefits(items []string) {
	j.Benefits = joinList(items)
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}

func joinList(items []string) string {
	trimmed := lo.Map(items, func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return strings.Join(lo.Compact(trimmed), listSeparator)
}
