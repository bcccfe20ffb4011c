// main.go
package main

import (
	"context"
	"log"

	"awami-saholat/cmd"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/wire"
	"awami-saholat/pkg/database"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Open identity snapshot store
	db, err := database.InitDB(config.Snapshot)
	if err != nil {
		logger.Fatal("Failed to open snapshot store", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Snapshot store ready", zap.String("path", config.Snapshot.Path))

	// Initialize all repositories
	repos := repository.NewRepository(db, config.Catalog.DefaultCity, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Restore persisted identity, kalau ada. Bookings tidak pernah
	// selamat dari restart.
	if err := app.Service.Auth.Restore(context.Background()); err != nil {
		logger.Warn("Failed to restore identity snapshot", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
