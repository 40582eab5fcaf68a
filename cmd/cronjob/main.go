package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unirent-backend/internal/config"
	"unirent-backend/internal/jobs"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/payment"
	"unirent-backend/internal/repository/mongodb"
	"unirent-backend/internal/scheduler"
	"unirent-backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-stale-bookings')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting UniRent Cronjob Runner...", "log_level", cfg.Log.Level)

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
	logger.Info("Database connection established")

	// Initialize Repositories
	store := mongodb.NewStore(client.Database(cfg.Database.Database))

	// Initialize Services
	mpesaClient := payment.NewClient(payment.Config{
		BaseURL:        cfg.MPesa.BaseURL,
		ConsumerKey:    cfg.MPesa.ConsumerKey,
		ConsumerSecret: cfg.MPesa.ConsumerSecret,
		Shortcode:      cfg.MPesa.Shortcode,
		Passkey:        cfg.MPesa.Passkey,
		CallbackURL:    cfg.MPesa.CallbackURL,
		Timeout:        time.Duration(cfg.MPesa.TimeoutSeconds) * time.Second,
	})
	bookingSvc := service.NewBookingService(store.BookingRepository, store.ItemRepository, mpesaClient)

	jobRunner := jobs.NewJobRunner(&jobs.Services{Booking: bookingSvc}, cfg)

	// Run a single job and exit when requested
	if *runOnce != "" {
		switch *runOnce {
		case "expire-stale-bookings":
			jobRunner.ExpireStaleBookings()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Otherwise run the scheduler until interrupted
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down cronjob runner...")
}
