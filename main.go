package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"teacher-substitution/app/config"
	"teacher-substitution/app/database"
	"teacher-substitution/app/services"
	"teacher-substitution/app/services/substitution"

	"go.uber.org/zap"
)

func main() {
	envLoaded := config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Info("No .env file found, using process environment")
	}

	time.Local = cfg.Location
	logger.Info("Application time zone set", zap.String("zone", time.Local.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.OpenDB(ctx, cfg)
	if err != nil {
		logger.Fatal("Cannot establish database connection", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer db.Close()
	logger.Info("Database connected successfully", zap.String("driver", cfg.DBDriver))

	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	store := database.NewStore(db)
	resolver := substitution.NewResolver(store, logger)

	// Start background scheduler
	services.StartScheduler(ctx, store, resolver, cfg.Location, cfg.DigestAt, logger)

	app := newApp(store, resolver, cfg.Location, logger)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
