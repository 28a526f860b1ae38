package services

import (
	"context"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/logger"
	log "github.com/sirupsen/logrus"
)

type mediaClient interface {
	Upload(ctx context.Context, content []byte, filename, folder string) (entities.MediaRef, error)
	Delete(ctx context.Context, id string) error
}

type avatarUpdater interface {
	UpdateAvatar(ctx context.Context, id string, avatar entities.MediaRef) error
}

// FileUpload is raw asset content handed down from the transport layer.
type FileUpload struct {
	Content  []byte
	Filename string
}

type StudentProfileInput struct {
	StudentID   *string
	Major       *string
	ClassName   *string
	GPA         *float64
	Description *string
}

type EmployerProfileInput struct {
	CompanyName    *string
	CompanyAddress *string
	Website        *string
	PhoneNumber    *string
	Description    *string
}

type UserService struct {
	users    userRepository
	avatars  avatarUpdater
	profiles profileRepository
	media    mediaClient
}

func NewUserService(users userRepository, avatars avatarUpdater, profiles profileRepository, media mediaClient) *UserService {
	return &UserService{users: users, avatars: avatars, profiles: profiles, media: media}
}

// ChangeAvatar uploads the new image, points the account at it and then
// drops the replaced asset. A failed upload aborts the operation; a failed
// delete of the old asset is only logged, the account already references
// the new one.
func (s *UserService) ChangeAvatar(ctx context.Context, userID string, file FileUpload) (entities.MediaRef, error) {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return entities.MediaRef{}, err
	}

	avatar, err := s.media.Upload(ctx, file.Content, file.Filename, "avatars")
	if err != nil {
		return entities.MediaRef{}, apperrors.Upstream("failed to upload avatar", err)
	}

	if err := s.avatars.UpdateAvatar(ctx, user.ID, avatar); err != nil {
		return entities.MediaRef{}, err
	}

	s.deleteReplacedAsset(ctx, user.Avatar)
	return avatar, nil
}

func (s *UserService) UpdateStudentProfile(ctx context.Context, userID string, input StudentProfileInput, cv *FileUpload) (*entities.StudentProfile, error) {

	profile, err := s.profiles.GetStudentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.StudentID != nil {
		profile.StudentID = *input.StudentID
	}
	if input.Major != nil {
		profile.Major = *input.Major
	}
	if input.ClassName != nil {
		profile.ClassName = *input.ClassName
	}
	if input.GPA != nil {
		if *input.GPA < 0 || *input.GPA > 4 {
			return nil, apperrors.Validation("gpa must be between 0 and 4")
		}
		profile.GPA = *input.GPA
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}

	oldCV := profile.CV
	if cv != nil {
		uploaded, err := s.media.Upload(ctx, cv.Content, cv.Filename, "cvs")
		if err != nil {
			return nil, apperrors.Upstream("failed to upload cv", err)
		}
		profile.CV = uploaded
	}

	if err := s.profiles.UpdateStudent(ctx, profile); err != nil {
		return nil, err
	}

	if cv != nil {
		s.deleteReplacedAsset(ctx, oldCV)
	}
	return profile, nil
}

func (s *UserService) UpdateEmployerProfile(ctx context.Context, userID string, input EmployerProfileInput) (*entities.EmployerProfile, error) {

	profile, err := s.profiles.GetEmployerByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		profile.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		profile.CompanyAddress = *input.CompanyAddress
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}

	if err := s.profiles.UpdateEmployer(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) deleteReplacedAsset(ctx context.Context, ref entities.MediaRef) {
	if ref.ID == "" {
		return
	}
	if err := s.media.Delete(ctx, ref.ID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeMediaApi).
			Errorf("failed to delete replaced asset %v: %v", ref.ID, err)
	}
}
