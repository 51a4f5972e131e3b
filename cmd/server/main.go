package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"gamerental-backend/internal/config"
	"gamerental-backend/internal/database"
	"gamerental-backend/internal/jobs"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/repository/postgres"
	"gamerental-backend/internal/scheduler"
	"gamerental-backend/internal/security"
	"gamerental-backend/internal/service"

	httpapi "gamerental-backend/internal/api/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrationsDir := flag.String("migrations", "migrations", "Path to SQL migrations directory")
	flag.Parse()

	// Load .env if present so env overrides work in local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Game Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	migrator := database.NewMigrator(db, *migrationsDir)
	if err := migrator.Run(context.Background()); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	tokenManager := security.NewTokenManager(store.TokenRepository, tokenTTL)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		logger.Info("Using SendGrid email delivery", "from", cfg.Email.FromEmail)
		emailSvc = service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("No SendGrid API key configured, email delivery disabled")
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	userSvc := service.NewUserService(store.UserRepository)
	gameSvc := service.NewGameService(store.GameRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.GameRepository)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.GameRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.RentalRepository)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc)
	userHandler := httpapi.NewUserHandler(userSvc)
	gameHandler := httpapi.NewGameHandler(gameSvc)
	rentalHandler := httpapi.NewRentalHandler(rentalSvc)
	reviewHandler := httpapi.NewReviewHandler(reviewSvc)
	paymentHandler := httpapi.NewPaymentHandler(paymentSvc)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, store.UserRepository)

	router := httpapi.NewRouter(
		authHandler,
		userHandler,
		gameHandler,
		rentalHandler,
		reviewHandler,
		paymentHandler,
		authMiddleware,
	)

	// Start background scheduler for token cleanup
	jobRunner := jobs.NewJobRunner(cfg, store.TokenRepository)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Wrap with CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), corsHandler); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
