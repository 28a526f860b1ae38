package api

import (
	"net/http"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError is the single place where error kinds become HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := statusOf(apperrors.KindOf(err))
	if status == http.StatusInternalServerError {
		log.Errorf("%v %v failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": apperrors.UserMessage(err)})
}

func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
