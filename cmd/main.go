package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/campushire/jobboard/internal/api"
	"github.com/campushire/jobboard/internal/clients/media"
	"github.com/campushire/jobboard/internal/config"
	"github.com/campushire/jobboard/internal/events"
	"github.com/campushire/jobboard/internal/logger"
	"github.com/campushire/jobboard/internal/metrics"
	"github.com/campushire/jobboard/internal/repositories"
	"github.com/campushire/jobboard/internal/security"
	"github.com/campushire/jobboard/internal/services"
	log "github.com/sirupsen/logrus"
)

func subscribeMetricsRecorder(bus EventBus.Bus) {

	err := bus.Subscribe(events.ApplicationSubmittedTopic, func(event events.ApplicationSubmitted) {
		metrics.ApplicationsSubmittedCounter.Inc()
	})
	if err != nil {
		log.Fatalf("can't subscribe to submitted events: %v", err)
	}

	err = bus.Subscribe(events.ApplicationStatusChangedTopic, func(event events.ApplicationStatusChanged) {
		metrics.ApplicationStatusCounter.WithLabelValues(event.NewStatus).Inc()
	})
	if err != nil {
		log.Fatalf("can't subscribe to status events: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.Driver, cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	profiles := repositories.NewProfilesRepository(dbContext.DB)
	jobs := repositories.NewCachedJobs(repositories.NewJobsRepository(dbContext.DB))
	applications := repositories.NewApplicationsRepository(dbContext.DB)

	mediaClient := media.NewClient(cfg.Media.BaseURL, cfg.Media.APIKey, cfg.Media.RequestTimeout)
	if cfg.Media.MaxRequestsPerSecond > 0 {
		mediaClient.SetRateLimit(cfg.Media.MaxRequestsPerSecond)
	}

	bus := EventBus.New()
	subscribeMetricsRecorder(bus)

	tokens := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	closer, err := services.NewJobsCloser(jobs)
	if err != nil {
		log.Fatalf("can't create jobs closer: %v", err)
	}
	defer closer.Stop()

	server := api.NewServer(cfg.Server, cfg.Media, tokens, api.Services{
		Auth:         services.NewAuthService(users, profiles),
		Users:        services.NewUserService(users, users, profiles, mediaClient),
		Jobs:         services.NewJobService(jobs),
		Applications: services.NewApplicationService(bus, applications, jobs, users, profiles),
	})

	go func() {
		log.Infof("listening on port %d", cfg.Server.Port)
		if err := server.Run(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
