package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/events"
	log "github.com/sirupsen/logrus"
)

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id string) (*entities.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error)
	GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error)
	GetByJob(ctx context.Context, jobID string) ([]entities.Application, error)
	UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus) error
}

type jobReader interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
}

type userReader interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type studentProfileReader interface {
	GetStudentByUser(ctx context.Context, userID string) (*entities.StudentProfile, error)
}

// ApplicationWithJob is a caller's own application joined with a summary of
// the posting it targets.
type ApplicationWithJob struct {
	Application entities.Application `json:"application"`
	Job         *entities.Job        `json:"job,omitempty"`
}

// ApplicantView is what the posting's employer sees per application. Fields
// come from the submission-time snapshot when one was taken, otherwise from
// a live join on the applicant's current account and profile.
type ApplicantView struct {
	ApplicationID string                     `json:"applicationId"`
	Status        entities.ApplicationStatus `json:"status"`
	Username      string                     `json:"username"`
	Email         string                     `json:"email"`
	Avatar        entities.MediaRef          `json:"avatar"`
	StudentID     string                     `json:"studentId"`
	Major         string                     `json:"major"`
	GPA           float64                    `json:"gpa"`
	Resume        entities.MediaRef          `json:"resume"`
}

// ApplicantDetail adds the resolved CV URL: the applicant's current CV when
// they still have one, else the CV attached at submission time.
type ApplicantDetail struct {
	ApplicantView
	CvURL string `json:"cvUrl,omitempty"`
}

type ApplicationService struct {
	bus          EventBus.Bus
	applications applicationRepository
	jobs         jobReader
	users        userReader
	profiles     studentProfileReader
}

func NewApplicationService(bus EventBus.Bus, applications applicationRepository, jobs jobReader,
	users userReader, profiles studentProfileReader) *ApplicationService {

	return &ApplicationService{
		bus:          bus,
		applications: applications,
		jobs:         jobs,
		users:        users,
		profiles:     profiles,
	}
}

// Apply submits an application for the caller. Guards run in order: the
// posting must exist and be open, the caller must have a complete student
// profile, and the (job, applicant) pair must not already hold an
// application. The duplicate case is caught by the store's unique index,
// not by a read-then-write check.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsClosed {
		return nil, apperrors.NotFound("job is not available")
	}

	user, err := s.users.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetStudentByUser(ctx, applicantID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("a student profile is required to apply")
		}
		return nil, err
	}
	if !profile.IsComplete() {
		return nil, apperrors.Validation("complete your student profile before applying")
	}

	snapshot := entities.ApplicantSnapshot{
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		StudentID: profile.StudentID,
		Major:     profile.Major,
		GPA:       profile.GPA,
	}

	application := entities.NewApplication(jobID, applicantID, snapshot, profile.CV)
	if err := s.applications.Add(ctx, application); err != nil {
		return nil, err
	}

	s.publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		ApplicationID: application.ID,
		JobID:         jobID,
		ApplicantID:   applicantID,
		JobTitle:      job.Title,
	})
	return application, nil
}

// Withdraw moves the caller's application for the given job to withdrawn.
// The lookup is filtered by the caller's identity, so withdrawing someone
// else's application is indistinguishable from it not existing.
func (s *ApplicationService) Withdraw(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {

	application, err := s.applications.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}

	if err := s.applications.UpdateStatus(ctx, application.ID, entities.StatusWithdrawn); err != nil {
		return nil, err
	}
	application.Status = entities.StatusWithdrawn

	s.publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		ApplicantID:   application.ApplicantID,
		NewStatus:     string(entities.StatusWithdrawn),
	})
	return application, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, applicantID string) ([]ApplicationWithJob, error) {

	applications, err := s.applications.GetByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationWithJob, 0, len(applications))
	for _, application := range applications {
		entry := ApplicationWithJob{Application: application}
		job, err := s.jobs.GetByID(ctx, application.JobID)
		if err == nil {
			entry.Job = job
		} else if !apperrors.Is(err, apperrors.KindNotFound) {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *ApplicationService) ListApplicants(ctx context.Context, jobID, callerID string) ([]ApplicantView, error) {

	if _, err := s.ownedJob(ctx, jobID, callerID); err != nil {
		return nil, err
	}

	applications, err := s.applications.GetByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	views := make([]ApplicantView, 0, len(applications))
	for _, application := range applications {
		views = append(views, s.applicantView(ctx, application))
	}
	return views, nil
}

func (s *ApplicationService) ApplicantDetail(ctx context.Context, jobID, applicationID, callerID string) (*ApplicantDetail, error) {

	if _, err := s.ownedJob(ctx, jobID, callerID); err != nil {
		return nil, err
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.JobID != jobID {
		return nil, apperrors.NotFound("application not found")
	}

	detail := &ApplicantDetail{ApplicantView: s.applicantView(ctx, *application)}

	if profile, err := s.profiles.GetStudentByUser(ctx, application.ApplicantID); err == nil && profile.CV.URL != "" {
		detail.CvURL = profile.CV.URL
	} else {
		detail.CvURL = application.Resume.URL
	}
	return detail, nil
}

// UpdateStatus is the employer side of the lifecycle. Only the owner of the
// application's posting may call it, only shortlisted, rejected and hired
// may be assigned, and a withdrawn application is frozen.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, callerID, status string) (*entities.Application, error) {

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	newStatus, ok := entities.EmployerSettableStatus(status)
	if !ok {
		return nil, apperrors.Validation("status must be one of shortlisted, rejected, hired")
	}

	if _, err := s.ownedJob(ctx, application.JobID, callerID); err != nil {
		return nil, err
	}
	if application.Status == entities.StatusWithdrawn {
		return nil, apperrors.Conflict("application has been withdrawn")
	}

	if err := s.applications.UpdateStatus(ctx, application.ID, newStatus); err != nil {
		return nil, err
	}
	application.Status = newStatus

	s.publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		ApplicantID:   application.ApplicantID,
		NewStatus:     string(newStatus),
	})
	return application, nil
}

func (s *ApplicationService) ownedJob(ctx context.Context, jobID, callerID string) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != callerID {
		return nil, apperrors.Forbidden("you do not own this job")
	}
	return job, nil
}

func (s *ApplicationService) applicantView(ctx context.Context, application entities.Application) ApplicantView {

	view := ApplicantView{
		ApplicationID: application.ID,
		Status:        application.Status,
		Resume:        application.Resume,
	}

	if !application.Snapshot.IsZero() {
		view.Username = application.Snapshot.Username
		view.Email = application.Snapshot.Email
		view.Avatar = application.Snapshot.Avatar
		view.StudentID = application.Snapshot.StudentID
		view.Major = application.Snapshot.Major
		view.GPA = application.Snapshot.GPA
		return view
	}

	user, err := s.users.GetByID(ctx, application.ApplicantID)
	if err != nil {
		log.Warnf("applicant %v of application %v could not be loaded: %v",
			application.ApplicantID, application.ID, err)
		return view
	}
	view.Username = user.Username
	view.Email = user.Email
	view.Avatar = user.Avatar

	if profile, err := s.profiles.GetStudentByUser(ctx, application.ApplicantID); err == nil {
		view.StudentID = profile.StudentID
		view.Major = profile.Major
		view.GPA = profile.GPA
	}
	return view
}

func (s *ApplicationService) publish(topic string, event any) {
	if s.bus != nil {
		s.bus.Publish(topic, event)
	}
}
