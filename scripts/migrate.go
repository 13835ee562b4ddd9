package main

import (
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/infrastructure/database"
	"github.com/johnquangdev/lti-omt/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back every applied migration")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if *down {
		direction = migrate.Down
	}

	n, err := database.Migrate(db, direction)
	if err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	logger.Info("Migrations applied", zap.Int("count", n), zap.Bool("down", *down))
}
