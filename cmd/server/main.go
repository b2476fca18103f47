package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/config"
	"github.com/reihansyahfitra/hes-vault-client/internal/jobs"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/scheduler"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
	"github.com/reihansyahfitra/hes-vault-client/internal/web"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HES Vault client...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Backend configuration", "base_url", cfg.API.BaseURL, "timeout", cfg.APITimeout())

	// Initialize the backend API client
	backend := api.NewClient(cfg.API.BaseURL, cfg.API.ImageBaseURL, cfg.APITimeout(), cfg.MaxUploadBytes())

	// Initialize Services
	sessionSvc := service.NewSessionService(backend, cfg.SessionTTL())
	cartSvc := service.NewCartService(backend)
	rentalSvc := service.NewRentalService(backend, backend)
	checkoutSvc := service.NewCheckoutService(backend, backend, backend, cfg.MaxUploadBytes())
	catalogSvc := service.NewCatalogService(backend, backend, backend)
	userSvc := service.NewUserService(backend)
	dashboardSvc := service.NewDashboardService(backend, backend, cfg.DashboardTTL())

	// Initialize the HTTP layer
	sessions := web.NewSessionStore(cfg.Session.CookieName, cfg.Session.SecureCookies)
	handlers := web.NewHandlers(web.HandlerDeps{
		Sessions:   sessions,
		SessionSvc: sessionSvc,
		Carts:      cartSvc,
		Rentals:    rentalSvc,
		Checkout:   checkoutSvc,
		Catalog:    catalogSvc,
		Users:      userSvc,
		Dashboards: dashboardSvc,
		Images:     backend,
		MaxUpload:  cfg.MaxUploadBytes(),
	})
	router := web.NewRouter(handlers)

	// Start the housekeeping scheduler
	jobRunner := jobs.NewJobRunner(sessions, dashboardSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutdown signal received", "signal", sig.String())

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
