package api

import (
	"net/http"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type applicationHandler struct {
	applications *services.ApplicationService
}

func newApplicationHandler(applications *services.ApplicationService) *applicationHandler {
	return &applicationHandler{applications: applications}
}

func (h *applicationHandler) apply(c *gin.Context) {
	application, err := h.applications.Apply(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toApplicationResponse(application))
}

func (h *applicationHandler) withdraw(c *gin.Context) {
	application, err := h.applications.Withdraw(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(application))
}

func (h *applicationHandler) listMine(c *gin.Context) {
	mine, err := h.applications.ListMine(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toApplicationWithJobResponses(mine)})
}

func (h *applicationHandler) listApplicants(c *gin.Context) {
	applicants, err := h.applications.ListApplicants(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": applicants})
}

func (h *applicationHandler) applicantDetail(c *gin.Context) {
	detail, err := h.applications.ApplicantDetail(c.Request.Context(),
		c.Param("id"), c.Param("appId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *applicationHandler) updateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("status is required"))
		return
	}

	application, err := h.applications.UpdateStatus(c.Request.Context(),
		c.Param("id"), callerID(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(application))
}
