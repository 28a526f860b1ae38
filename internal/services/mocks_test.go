package services

import (
	"context"
	"time"

	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Add(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUsers) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUsers) UpdateAvatar(ctx context.Context, id string, avatar entities.MediaRef) error {
	return m.Called(ctx, id, avatar).Error(0)
}

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) AddStudent(ctx context.Context, profile *entities.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfiles) AddEmployer(ctx context.Context, profile *entities.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfiles) GetStudentByUser(ctx context.Context, userID string) (*entities.StudentProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*entities.StudentProfile)
	return profile, args.Error(1)
}

func (m *mockProfiles) GetEmployerByUser(ctx context.Context, userID string) (*entities.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*entities.EmployerProfile)
	return profile, args.Error(1)
}

func (m *mockProfiles) UpdateStudent(ctx context.Context, profile *entities.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfiles) UpdateEmployer(ctx context.Context, profile *entities.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) Add(ctx context.Context, job *entities.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobs) Update(ctx context.Context, job *entities.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobs) Search(ctx context.Context, filter repositories.JobFilter) ([]entities.Job, int64, error) {
	args := m.Called(ctx, filter)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *mockJobs) GetByOwner(ctx context.Context, ownerID string) ([]entities.Job, error) {
	args := m.Called(ctx, ownerID)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobs) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) Add(ctx context.Context, application *entities.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplications) GetByID(ctx context.Context, id string) (*entities.Application, error) {
	args := m.Called(ctx, id)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplications) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {
	args := m.Called(ctx, jobID, applicantID)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplications) GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	args := m.Called(ctx, applicantID)
	applications, _ := args.Get(0).([]entities.Application)
	return applications, args.Error(1)
}

func (m *mockApplications) GetByJob(ctx context.Context, jobID string) ([]entities.Application, error) {
	args := m.Called(ctx, jobID)
	applications, _ := args.Get(0).([]entities.Application)
	return applications, args.Error(1)
}

func (m *mockApplications) UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) Upload(ctx context.Context, content []byte, filename, folder string) (entities.MediaRef, error) {
	args := m.Called(ctx, content, filename, folder)
	return args.Get(0).(entities.MediaRef), args.Error(1)
}

func (m *mockMedia) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
