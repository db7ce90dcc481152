// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/peladasmanager/backend/internal/config"
	"github.com/peladasmanager/backend/internal/database"
	"github.com/peladasmanager/backend/internal/database/migrate"
	eventRouter "github.com/peladasmanager/backend/internal/event/router"
	goalRouter "github.com/peladasmanager/backend/internal/goal/router"
	"github.com/peladasmanager/backend/internal/health"
	matchRouter "github.com/peladasmanager/backend/internal/match/router"
	"github.com/peladasmanager/backend/internal/middleware"
	playerRouter "github.com/peladasmanager/backend/internal/player/router"
	"github.com/peladasmanager/backend/pkg/logger"
)

const version = "1.0.0"

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			appLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Peladas Manager API is running",
			"version": version,
		})
	})

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	playerRouter.RegisterRoutes(r, db, appLogger)
	eventRouter.RegisterRoutes(r, db, appLogger)
	matchRouter.RegisterRoutes(r, db, appLogger)
	goalRouter.RegisterRoutes(r, db, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("failed to start server", "error", err)
	}
}
