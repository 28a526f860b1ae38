package entities

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfile struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"uniqueIndex"`
	StudentID   string
	Major       string
	ClassName   string
	GPA         float64
	Description string
	CV          MediaRef `gorm:"embedded;embeddedPrefix:cv_"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewStudentProfile(userID, studentID, major, className string, gpa float64, description string) *StudentProfile {
	return &StudentProfile{
		ID:          uuid.NewString(),
		UserID:      userID,
		StudentID:   studentID,
		Major:       major,
		ClassName:   className,
		GPA:         gpa,
		Description: description,
	}
}

// IsComplete reports whether the profile carries the fields required to
// apply for a job.
func (p *StudentProfile) IsComplete() bool {
	return p.StudentID != "" && p.Major != ""
}

type EmployerProfile struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"uniqueIndex"`
	CompanyName    string
	CompanyAddress string
	Website        string
	PhoneNumber    string
	Description    string
	Logo           MediaRef `gorm:"embedded;embeddedPrefix:logo_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewEmployerProfile(userID, companyName, companyAddress, website, phoneNumber string) *EmployerProfile {
	return &EmployerProfile{
		ID:             uuid.NewString(),
		UserID:         userID,
		CompanyName:    companyName,
		CompanyAddress: companyAddress,
		Website:        website,
		PhoneNumber:    phoneNumber,
	}
}
