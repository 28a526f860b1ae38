package api

import (
	"net/http"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/config"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/security"
	"github.com/campushire/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type authHandler struct {
	auth      *services.AuthService
	tokens    *security.TokenManager
	serverCfg config.ServerConfig
}

func newAuthHandler(auth *services.AuthService, tokens *security.TokenManager, serverCfg config.ServerConfig) *authHandler {
	return &authHandler{auth: auth, tokens: tokens, serverCfg: serverCfg}
}

func (h *authHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		StudentID:      req.StudentID,
		Major:          req.Major,
		ClassName:      req.ClassName,
		GPA:            req.GPA,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		Website:        req.Website,
		PhoneNumber:    req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("invalid email or password"))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h *authHandler) logout(c *gin.Context) {
	clearSessionCookie(c, h.serverCfg)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *authHandler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	user, err := h.auth.ChangePassword(c.Request.Context(), callerID(c),
		req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	// the old cookie stays valid until expiry, so hand out a fresh one
	if err := h.issueSession(c, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *authHandler) profile(c *gin.Context) {
	view, err := h.auth.Profile(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"user": toUserResponse(view.User)}
	if view.Student != nil {
		response["student"] = view.Student
	}
	if view.Employer != nil {
		response["employer"] = view.Employer
	}
	c.JSON(http.StatusOK, response)
}

func (h *authHandler) issueSession(c *gin.Context, user *entities.User) error {
	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return err
	}
	setSessionCookie(c, h.serverCfg, token, int(h.tokens.TTL().Seconds()))
	return nil
}
