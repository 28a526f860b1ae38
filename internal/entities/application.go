package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

// EmployerSettableStatus reports whether a status value belongs to the set
// an employer may assign. Applied and withdrawn are reserved for the
// applicant side of the lifecycle.
func EmployerSettableStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusShortlisted:
		return StatusShortlisted, true
	case StatusRejected:
		return StatusRejected, true
	case StatusHired:
		return StatusHired, true
	default:
		return "", false
	}
}

// ApplicantSnapshot is a point-in-time copy of the applicant's identity and
// student profile taken when the application is submitted. It deliberately
// does not track later profile edits.
type ApplicantSnapshot struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Avatar    MediaRef `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`
	StudentID string   `json:"studentId"`
	Major     string   `json:"major"`
	GPA       float64  `json:"gpa"`
}

func (s ApplicantSnapshot) IsZero() bool {
	return s.Username == "" && s.Email == ""
}

type Application struct {
	ID          string            `gorm:"primaryKey"`
	JobID       string            `gorm:"index"`
	ApplicantID string            `gorm:"index"`
	Snapshot    ApplicantSnapshot `gorm:"embedded;embeddedPrefix:snapshot_"`
	Resume      MediaRef          `gorm:"embedded;embeddedPrefix:resume_"`
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewApplication(jobID, applicantID string, snapshot ApplicantSnapshot, resume MediaRef) *Application {
	return &Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Snapshot:    snapshot,
		Resume:      resume,
		Status:      StatusApplied,
	}
}
