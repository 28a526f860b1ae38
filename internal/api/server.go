package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/campushire/jobboard/internal/config"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/campushire/jobboard/internal/security"
	"github.com/campushire/jobboard/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, mediaCfg config.MediaConfig,
	tokens *security.TokenManager, svc Services) *Server {

	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), Metrics())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	router.Use(cors.New(corsConfig))

	registerRoutes(router, cfg, mediaCfg, tokens, svc)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func registerRoutes(router *gin.Engine, cfg config.ServerConfig, mediaCfg config.MediaConfig,
	tokens *security.TokenManager, svc Services) {

	authenticated := Authenticate(tokens)
	studentOnly := RequireRole(entities.RoleStudent)
	employerOnly := RequireRole(entities.RoleEmployer)
	loginLimiter := RateLimit(1, 5)

	auth := newAuthHandler(svc.Auth, tokens, cfg)
	user := newUserHandler(svc.Users, mediaCfg.MaxUploadSizeMB)
	job := newJobHandler(svc.Jobs)
	application := newApplicationHandler(svc.Applications)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", loginLimiter, auth.register)
		authGroup.POST("/login", loginLimiter, auth.login)
		authGroup.POST("/logout", auth.logout)
		authGroup.PATCH("/change-password", authenticated, auth.changePassword)
		authGroup.GET("/profile", authenticated, auth.profile)
	}

	jobsGroup := router.Group("/jobs")
	{
		jobsGroup.GET("", job.list)
		jobsGroup.GET("/:id", job.get)
		jobsGroup.POST("", authenticated, employerOnly, job.create)
		jobsGroup.PUT("/:id", authenticated, employerOnly, job.update)
		jobsGroup.DELETE("/:id", authenticated, employerOnly, job.close)
		jobsGroup.GET("/employer/me", authenticated, employerOnly, job.listMine)
	}

	applicationsGroup := router.Group("/applications", authenticated)
	{
		applicationsGroup.POST("/:id/apply", studentOnly, application.apply)
		applicationsGroup.DELETE("/:id/apply", studentOnly, application.withdraw)
		applicationsGroup.GET("/mine", studentOnly, application.listMine)
		applicationsGroup.GET("/:id/applicants", employerOnly, application.listApplicants)
		applicationsGroup.GET("/:id/applicants/:appId", employerOnly, application.applicantDetail)
		applicationsGroup.PATCH("/:id/status", employerOnly, application.updateStatus)
	}

	userGroup := router.Group("/user", authenticated)
	{
		userGroup.PATCH("/avatar", user.changeAvatar)
		userGroup.PATCH("/profile/student", studentOnly, user.updateStudentProfile)
		userGroup.PATCH("/profile/employer", employerOnly, user.updateEmployerProfile)
	}
}

func (s *Server) Run() error {
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
