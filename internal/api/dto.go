package api

import (
	"time"

	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/services"
	"github.com/samber/lo"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=student employer"`

	StudentID string  `json:"studentId"`
	Major     string  `json:"major"`
	ClassName string  `json:"className"`
	GPA       float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`

	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	Website        string `json:"website" binding:"omitempty,url"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,numeric,min=9,max=11"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword"`
}

type jobRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	SalaryFrom   *int       `json:"salaryFrom" binding:"omitempty,gte=0"`
	SalaryTo     *int       `json:"salaryTo" binding:"omitempty,gte=0"`
	JobType      string     `json:"jobType" binding:"omitempty,jobtype"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	Deadline     *time.Time `json:"deadline"`
}

func (r jobRequest) toInput() services.JobInput {
	return services.JobInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		SalaryFrom:   r.SalaryFrom,
		SalaryTo:     r.SalaryTo,
		JobType:      r.JobType,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		Deadline:     r.Deadline,
	}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type employerProfileRequest struct {
	CompanyName    *string `json:"companyName"`
	CompanyAddress *string `json:"companyAddress"`
	Website        *string `json:"website" binding:"omitempty,url"`
	PhoneNumber    *string `json:"phoneNumber" binding:"omitempty,numeric,min=9,max=11"`
	Description    *string `json:"description"`
}

type userResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      entities.Role     `json:"role"`
	Avatar    entities.MediaRef `json:"avatar"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toUserResponse(user *entities.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

type jobResponse struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"ownerId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Location     string            `json:"location"`
	SalaryFrom   *int              `json:"salaryFrom,omitempty"`
	SalaryTo     *int              `json:"salaryTo,omitempty"`
	JobType      entities.JobType  `json:"jobType"`
	Requirements []string          `json:"requirements"`
	Benefits     []string          `json:"benefits"`
	Deadline     *time.Time        `json:"deadline,omitempty"`
	IsClosed     bool              `json:"isClosed"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func toJobResponse(job *entities.Job) jobResponse {
	return jobResponse{
		ID:           job.ID,
		OwnerID:      job.OwnerID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		SalaryFrom:   job.SalaryFrom,
		SalaryTo:     job.SalaryTo,
		JobType:      job.JobType,
		Requirements: job.RequirementsAsArray(),
		Benefits:     job.BenefitsAsArray(),
		Deadline:     job.Deadline,
		IsClosed:     job.IsClosed,
		CreatedAt:    job.CreatedAt,
	}
}

func toJobResponses(jobs []entities.Job) []jobResponse {
	return lo.Map(jobs, func(job entities.Job, _ int) jobResponse {
		return toJobResponse(&job)
	})
}

type applicationResponse struct {
	ID        string                     `json:"id"`
	JobID     string                     `json:"jobId"`
	Status    entities.ApplicationStatus `json:"status"`
	Resume    entities.MediaRef          `json:"resume"`
	CreatedAt time.Time                  `json:"createdAt"`
}

func toApplicationResponse(application *entities.Application) applicationResponse {
	return applicationResponse{
		ID:        application.ID,
		JobID:     application.JobID,
		Status:    application.Status,
		Resume:    application.Resume,
		CreatedAt: application.CreatedAt,
	}
}

type applicationWithJobResponse struct {
	applicationResponse
	Job *jobResponse `json:"job,omitempty"`
}

func toApplicationWithJobResponses(items []services.ApplicationWithJob) []applicationWithJobResponse {
	return lo.Map(items, func(item services.ApplicationWithJob, _ int) applicationWithJobResponse {
		response := applicationWithJobResponse{
			applicationResponse: toApplicationResponse(&item.Application),
		}
		if item.Job != nil {
			job := toJobResponse(item.Job)
			response.Job = &job
		}
		return response
	})
}
