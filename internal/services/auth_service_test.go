package services

import (
	"context"
	"testing"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_Register_Student_CreatesUserAndProfile(t *testing.T) {

	users := &mockUsers{}
	profiles := &mockProfiles{}

	users.On("Add", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "alice@example.com" && u.Role == entities.RoleStudent
	})).Return(nil).Once()
	profiles.On("AddStudent", mock.Anything, mock.MatchedBy(func(p *entities.StudentProfile) bool {
		return p.StudentID == "S-100" && p.Major == "CS"
	})).Return(nil).Once()

	service := NewAuthService(users, profiles)
	user, err := service.Register(context.Background(), RegisterInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		Password:  "secret1",
		Role:      "student",
		StudentID: "S-100",
		Major:     "CS",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, security.CheckPassword("secret1", user.PasswordHash))
	users.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func Test_Register_DuplicateEmail_IsValidationError(t *testing.T) {

	users := &mockUsers{}
	profiles := &mockProfiles{}
	users.On("Add", mock.Anything, mock.Anything).
		Return(apperrors.Conflict("email already registered"))

	service := NewAuthService(users, profiles)
	_, err := service.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "secret1", Role: "employer",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func Test_Register_UnknownRole_Fails(t *testing.T) {

	service := NewAuthService(&mockUsers{}, &mockProfiles{})
	_, err := service.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "secret1", Role: "admin",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func Test_Login_WrongPasswordAndUnknownEmail_SameMessage(t *testing.T) {

	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &mockUsers{}
	users.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&entities.User{ID: "u1", Email: "known@example.com", PasswordHash: hash}, nil)
	users.On("GetByEmail", mock.Anything, "unknown@example.com").
		Return(nil, apperrors.NotFound("user not found"))

	service := NewAuthService(users, &mockProfiles{})

	_, errWrongPassword := service.Login(context.Background(), "known@example.com", "nope")
	_, errUnknownEmail := service.Login(context.Background(), "unknown@example.com", "nope")

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(errWrongPassword))
}

func Test_Login_Succeeds(t *testing.T) {

	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &mockUsers{}
	users.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&entities.User{ID: "u1", Email: "known@example.com", PasswordHash: hash}, nil)

	service := NewAuthService(users, &mockProfiles{})
	user, err := service.Login(context.Background(), "known@example.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func Test_ChangePassword_Rules(t *testing.T) {

	hash, err := security.HashPassword("oldpassword")
	require.NoError(t, err)

	tests := []struct {
		name        string
		oldPassword string
		newPassword string
		confirm     string
		wantErr     string
	}{
		{"wrong old password", "not-the-old-one", "newpassword", "", "old password is incorrect"},
		{"too short", "oldpassword", "short", "", "at least 6 characters"},
		{"same as current", "oldpassword", "oldpassword", "", "must be different"},
		{"confirmation mismatch", "oldpassword", "newpassword", "other", "confirmation does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUsers{}
			users.On("GetByID", mock.Anything, "u1").
				Return(&entities.User{ID: "u1", PasswordHash: hash}, nil)

			service := NewAuthService(users, &mockProfiles{})
			_, err := service.ChangePassword(context.Background(), "u1", tt.oldPassword, tt.newPassword, tt.confirm)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func Test_ChangePassword_Succeeds(t *testing.T) {

	hash, err := security.HashPassword("oldpassword")
	require.NoError(t, err)

	users := &mockUsers{}
	users.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", PasswordHash: hash}, nil)
	users.On("UpdatePasswordHash", mock.Anything, "u1", mock.Anything).Return(nil).Once()

	service := NewAuthService(users, &mockProfiles{})
	user, err := service.ChangePassword(context.Background(), "u1", "oldpassword", "newpassword", "newpassword")

	require.NoError(t, err)
	assert.True(t, security.CheckPassword("newpassword", user.PasswordHash))
	users.AssertExpectations(t)
}

func Test_Profile_ReturnsRoleSpecificDetail(t *testing.T) {

	users := &mockUsers{}
	profiles := &mockProfiles{}
	users.On("GetByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Role: entities.RoleEmployer}, nil)
	profiles.On("GetEmployerByUser", mock.Anything, "u1").
		Return(&entities.EmployerProfile{UserID: "u1", CompanyName: "Acme"}, nil)

	service := NewAuthService(users, profiles)
	view, err := service.Profile(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, view.Employer)
	assert.Nil(t, view.Student)
	assert.Equal(t, "Acme", view.Employer.CompanyName)
}
