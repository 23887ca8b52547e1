package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/config"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/handler"
	adminHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/admin"
	authHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/auth"
	publicHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/public"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/middleware"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/repository/postgres"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/router"
	advertisementService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/advertisement"
	analyticsService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/analytics"
	authService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/auth"
	professionalService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/professional"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Environment)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	base := postgres.NewBaseRepository(db)
	professionalRepo := postgres.NewProfessionalRepository(base)
	adminRepo := postgres.NewAdminRepository(base)
	analyticsRepo := postgres.NewAnalyticsRepository(base)
	advertisementRepo := postgres.NewAdvertisementRepository(base)

	// Services
	analyticsSvc := analyticsService.NewService(analyticsRepo)
	professionalSvc := professionalService.NewService(professionalRepo, analyticsSvc)
	advertisementSvc := advertisementService.NewService(advertisementRepo)
	authSvc := authService.NewService(adminRepo, cfg.Session.Secret, cfg.Session.ExpiryHours)

	if err := authSvc.Bootstrap(context.Background(), cfg.Environment, cfg.Admin.BootstrapPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler(db)
	publicH := publicHandler.NewHandler(professionalSvc, analyticsSvc, advertisementSvc)
	authH := authHandler.NewHandler(authSvc, authMiddleware, cfg.Environment == "production")
	adminH := adminHandler.NewHandler(professionalSvc, analyticsSvc)

	r := router.NewRouter(authMiddleware, publicH, authH, adminH, h, router.RouterConfig{
		Environment:   cfg.Environment,
		RateLimitRPS:  cfg.RateLimit.RPS,
		RateBurst:     cfg.RateLimit.Burst,
		MetricsPrefix: "saludvalleuco",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
