package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "unirent-backend/internal/api/http"
	"unirent-backend/internal/config"
	"unirent-backend/internal/domain"
	"unirent-backend/internal/jobs"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/payment"
	"unirent-backend/internal/repository/mongodb"
	"unirent-backend/internal/scheduler"
	"unirent-backend/internal/security"
	"unirent-backend/internal/service"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting UniRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_url", cfg.Server.BaseURL)

	// The alias tables back every category listing; refuse to start with a
	// canonical key nothing can map to.
	if err := domain.ValidateCategoryTables(); err != nil {
		logger.Error("Category alias tables are inconsistent", "error", err)
		log.Fatalf("Category alias tables are inconsistent: %v", err)
	}

	// Initialize Database
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from database", "error", err)
		}
	}()

	// Test database connection
	if err := client.Ping(connectCtx, nil); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established", "database", cfg.Database.Database)

	// Initialize Repositories
	store := mongodb.NewStore(client.Database(cfg.Database.Database))

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.ResetTokenExpiry)*time.Minute,
	)

	// Initialize Payment Gateway Client
	mpesaClient := payment.NewClient(payment.Config{
		BaseURL:        cfg.MPesa.BaseURL,
		ConsumerKey:    cfg.MPesa.ConsumerKey,
		ConsumerSecret: cfg.MPesa.ConsumerSecret,
		Shortcode:      cfg.MPesa.Shortcode,
		Passkey:        cfg.MPesa.Passkey,
		CallbackURL:    cfg.MPesa.CallbackURL,
		Timeout:        time.Duration(cfg.MPesa.TimeoutSeconds) * time.Second,
	})

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.Server.BaseURL,
	)

	// Initialize Services
	userSvc := service.NewUserService(store.UserRepository, tokenManager, emailSvc)
	catalogSvc := service.NewCatalogService(store.ItemRepository)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.ItemRepository, mpesaClient)

	// Start scheduler
	jobRunner := jobs.NewJobRunner(&jobs.Services{Booking: bookingSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(userSvc, catalogSvc, bookingSvc, tokenManager)
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
