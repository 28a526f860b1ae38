package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/metrics"
	"github.com/campushire/jobboard/internal/security"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	sessionCookieName = "token"
	contextUserIDKey  = "userID"
	contextRoleKey    = "role"
)

// Authenticate reads the session cookie and puts the caller's identity into
// the request context. It does not care about roles; RequireRole does.
func Authenticate(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(sessionCookieName)
		if err != nil || tokenString == "" {
			respondError(c, apperrors.Unauthenticated("authentication required"))
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			respondError(c, apperrors.Unauthenticated("invalid or expired token"))
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. An empty role set means any
// authenticated caller passes.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		callerRole, _ := entities.ToRole(c.GetString(contextRoleKey))
		for _, role := range roles {
			if callerRole == role {
				c.Next()
				return
			}
		}

		respondError(c, apperrors.Forbidden("insufficient permissions"))
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

// Metrics records the request counter and latency histogram per route
// template, so /jobs/:id stays one series regardless of the id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsCounter.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// RateLimit applies a per-client token bucket to abuse-prone routes such as
// login and apply. Idle client buckets are dropped after an hour.
func RateLimit(requestsPerSecond float64, burst int) gin.HandlerFunc {

	type visitor struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	return func(c *gin.Context) {
		mu.Lock()
		ip := c.ClientIP()
		v, found := visitors[ip]
		if !found {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
			visitors[ip] = v
		}
		v.lastSeen = time.Now()

		for seen, other := range visitors {
			if time.Since(other.lastSeen) > time.Hour {
				delete(visitors, seen)
			}
		}
		mu.Unlock()

		if !v.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"message": "too many requests, slow down"})
			return
		}
		c.Next()
	}
}
