package api

import (
	"net/http"
	"strconv"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type jobHandler struct {
	jobs *services.JobService
}

func newJobHandler(jobs *services.JobService) *jobHandler {
	return &jobHandler{jobs: jobs}
}

func (h *jobHandler) list(c *gin.Context) {
	query := services.JobQuery{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		OwnerID:  c.Query("ownerId"),
	}
	query.Page, _ = strconv.Atoi(c.Query("page"))
	query.Limit, _ = strconv.Atoi(c.Query("limit"))

	if raw := c.Query("isClosed"); raw != "" {
		isClosed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperrors.Validation("isClosed must be true or false"))
			return
		}
		query.IsClosed = &isClosed
	}

	jobs, meta, err := h.jobs.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponses(jobs), "meta": meta})
}

func (h *jobHandler) get(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *jobHandler) create(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), callerID(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toJobResponse(job))
}

func (h *jobHandler) update(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), callerID(c), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *jobHandler) close(c *gin.Context) {
	job, err := h.jobs.Close(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *jobHandler) listMine(c *gin.Context) {
	jobs, err := h.jobs.ListByOwner(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponses(jobs)})
}
