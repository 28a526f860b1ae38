package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *security.TokenManager, roles ...entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Authenticate(tokens), RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": callerID(c)})
	})
	return router
}

func Test_Authenticate_NoCookie_Unauthorized(t *testing.T) {

	tokens := security.NewTokenManager("test-secret", "", time.Hour)
	router := newProtectedRouter(tokens)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "authentication required")
}

func Test_Authenticate_GarbageToken_Unauthorized(t *testing.T) {

	tokens := security.NewTokenManager("test-secret", "", time.Hour)
	router := newProtectedRouter(tokens)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func Test_Authenticate_ExpiredToken_Unauthorized(t *testing.T) {

	expired := security.NewTokenManager("test-secret", "", -time.Minute)
	token, err := expired.Generate("u1", entities.RoleStudent)
	require.NoError(t, err)

	router := newProtectedRouter(security.NewTokenManager("test-secret", "", time.Hour))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func Test_RequireRole_WrongRole_Forbidden(t *testing.T) {

	tokens := security.NewTokenManager("test-secret", "", time.Hour)
	token, err := tokens.Generate("u1", entities.RoleStudent)
	require.NoError(t, err)

	router := newProtectedRouter(tokens, entities.RoleEmployer)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func Test_RequireRole_MatchingRole_Passes(t *testing.T) {

	tokens := security.NewTokenManager("test-secret", "", time.Hour)
	token, err := tokens.Generate("u1", entities.RoleEmployer)
	require.NoError(t, err)

	router := newProtectedRouter(tokens, entities.RoleEmployer)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "u1")
}

func Test_RequireRole_EmptySet_AnyAuthenticated(t *testing.T) {

	tokens := security.NewTokenManager("test-secret", "", time.Hour)
	token, err := tokens.Generate("u1", entities.RoleStudent)
	require.NoError(t, err)

	router := newProtectedRouter(tokens)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func Test_RateLimit_RejectsBurstOverflow(t *testing.T) {

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/limited", RateLimit(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/limited", nil)
		router.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
