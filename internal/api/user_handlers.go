package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type userHandler struct {
	users           *services.UserService
	maxUploadSizeMB int
}

func newUserHandler(users *services.UserService, maxUploadSizeMB int) *userHandler {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = 25
	}
	return &userHandler{users: users, maxUploadSizeMB: maxUploadSizeMB}
}

func (h *userHandler) changeAvatar(c *gin.Context) {
	file, err := h.readUpload(c, "avatar", true)
	if err != nil {
		respondError(c, err)
		return
	}
	if file == nil {
		respondError(c, apperrors.Validation("avatar file is required"))
		return
	}

	avatar, err := h.users.ChangeAvatar(c.Request.Context(), callerID(c), *file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": avatar})
}

func (h *userHandler) updateStudentProfile(c *gin.Context) {
	input := services.StudentProfileInput{
		StudentID:   formValue(c, "studentId"),
		Major:       formValue(c, "major"),
		ClassName:   formValue(c, "className"),
		Description: formValue(c, "description"),
	}

	if raw := formValue(c, "gpa"); raw != nil {
		gpa, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			respondError(c, apperrors.Validation("gpa must be a number"))
			return
		}
		input.GPA = &gpa
	}

	cv, err := h.readUpload(c, "cv", false)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.users.UpdateStudentProfile(c.Request.Context(), callerID(c), input, cv)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *userHandler) updateEmployerProfile(c *gin.Context) {
	var req employerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	profile, err := h.users.UpdateEmployerProfile(c.Request.Context(), callerID(c), services.EmployerProfileInput{
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		Website:        req.Website,
		PhoneNumber:    req.PhoneNumber,
		Description:    req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// readUpload pulls one file out of the multipart form. A missing file is not
// an error; callers decide whether the field is required.
func (h *userHandler) readUpload(c *gin.Context, field string, imageOnly bool) (*services.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.Validation("could not read uploaded file")
	}

	if header.Size > int64(h.maxUploadSizeMB)<<20 {
		return nil, apperrors.Validation("file exceeds the upload size limit")
	}
	if imageOnly && !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return nil, apperrors.Validation("only image uploads are allowed")
	}

	opened, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	content, err := io.ReadAll(opened)
	if err != nil {
		return nil, err
	}

	return &services.FileUpload{Content: content, Filename: header.Filename}, nil
}

func formValue(c *gin.Context, field string) *string {
	if value, ok := c.GetPostForm(field); ok {
		return &value
	}
	return nil
}
