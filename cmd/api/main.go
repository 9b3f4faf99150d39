package main

import (
	"fmt"
	"os"

	"cashtrackr/internal/config"
	"cashtrackr/internal/database"
	"cashtrackr/internal/logger"
	"cashtrackr/internal/mailer"
	"cashtrackr/internal/middleware"
	"cashtrackr/internal/router"
	"cashtrackr/internal/services"
	"cashtrackr/internal/validator"
)

// @title           CashTrackr API
// @version         1.0
// @description     CashTrackr lets users keep budgets and record the expenses charged against them.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	mail, err := mailer.New(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	engine, err := router.New(router.Dependencies{
		Users:          services.NewUserService(db, mail),
		Budgets:        services.NewBudgetService(db),
		Expenses:       services.NewExpenseService(db),
		Audit:          services.NewAuditService(db),
		Issuer:         middleware.NewTokenIssuer(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		AuthLimiter:    middleware.NewRateLimiter(appConfig.AuthRateLimit),
		TrustedProxies: appConfig.TrustedProxies,
	})
	if err != nil {
		return err
	}

	log.Infof("Starting CashTrackr API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
