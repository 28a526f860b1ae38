package services

import (
	"context"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/security"
)

type userRepository interface {
	Add(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

type profileRepository interface {
	AddStudent(ctx context.Context, profile *entities.StudentProfile) error
	AddEmployer(ctx context.Context, profile *entities.EmployerProfile) error
	GetStudentByUser(ctx context.Context, userID string) (*entities.StudentProfile, error)
	GetEmployerByUser(ctx context.Context, userID string) (*entities.EmployerProfile, error)
	UpdateStudent(ctx context.Context, profile *entities.StudentProfile) error
	UpdateEmployer(ctx context.Context, profile *entities.EmployerProfile) error
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string

	StudentID string
	Major     string
	ClassName string
	GPA       float64

	CompanyName    string
	CompanyAddress string
	Website        string
	PhoneNumber    string
}

// ProfileView is an account together with its role-specific detail. Exactly
// one of Student and Employer is set, matching the account's role.
type ProfileView struct {
	User     *entities.User            `json:"user"`
	Student  *entities.StudentProfile  `json:"student,omitempty"`
	Employer *entities.EmployerProfile `json:"employer,omitempty"`
}

type AuthService struct {
	users    userRepository
	profiles profileRepository
}

func NewAuthService(users userRepository, profiles profileRepository) *AuthService {
	return &AuthService{users: users, profiles: profiles}
}

// Register creates the account and its role-specific profile in one call.
// Registering an already used email reports a validation failure rather than
// a conflict, which is what clients of this endpoint historically expect.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {

	role, ok := entities.ToRole(input.Role)
	if !ok {
		return nil, apperrors.Validation("role must be either student or employer")
	}
	if len(input.Password) < security.MinPasswordLength {
		return nil, apperrors.Validation("password must be at least 6 characters long")
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(input.Username, input.Email, hash, role)
	if err := s.users.Add(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.KindConflict) {
			return nil, apperrors.Validation("email already exists")
		}
		return nil, err
	}

	switch role {
	case entities.RoleStudent:
		profile := entities.NewStudentProfile(user.ID, input.StudentID, input.Major,
			input.ClassName, input.GPA, "")
		err = s.profiles.AddStudent(ctx, profile)
	case entities.RoleEmployer:
		profile := entities.NewEmployerProfile(user.ID, input.CompanyName,
			input.CompanyAddress, input.Website, input.PhoneNumber)
		err = s.profiles.AddEmployer(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login deliberately reports the same message for an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("invalid email or password")
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.Validation("invalid email or password")
	}

	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) (*entities.User, error) {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return nil, apperrors.Validation("old password is incorrect")
	}
	if len(newPassword) < security.MinPasswordLength {
		return nil, apperrors.Validation("new password must be at least 6 characters long")
	}
	if security.CheckPassword(newPassword, user.PasswordHash) {
		return nil, apperrors.Validation("new password must be different from the current one")
	}
	if confirmPassword != "" && confirmPassword != newPassword {
		return nil, apperrors.Validation("password confirmation does not match")
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*ProfileView, error) {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{User: user}

	switch user.Role {
	case entities.RoleStudent:
		profile, err := s.profiles.GetStudentByUser(ctx, userID)
		if err != nil && !apperrors.Is(err, apperrors.KindNotFound) {
			return nil, err
		}
		view.Student = profile
	case entities.RoleEmployer:
		profile, err := s.profiles.GetEmployerByUser(ctx, userID)
		if err != nil && !apperrors.Is(err, apperrors.KindNotFound) {
			return nil, err
		}
		view.Employer = profile
	}

	return view, nil
}
