package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/lti-omt/docs"
	"github.com/johnquangdev/lti-omt/internal/adapter/handler"
	"github.com/johnquangdev/lti-omt/internal/adapter/repository"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/cache"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/lti-omt/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/storage"
	"github.com/johnquangdev/lti-omt/internal/usecase/archive"
	"github.com/johnquangdev/lti-omt/internal/usecase/backup"
	"github.com/johnquangdev/lti-omt/internal/usecase/export"
	"github.com/johnquangdev/lti-omt/internal/usecase/meeting"
	"github.com/johnquangdev/lti-omt/pkg/config"
	pkgvalidator "github.com/johnquangdev/lti-omt/pkg/validator"
)

// @title           LTI OMT Meeting API
// @version         1.0
// @description     Long-term isolation meeting records: history, statistics, validation, backup and document export

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	newLogger := zap.NewDevelopment
	if cfg.IsProduction() {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(httpmw.RequestID())
	e.Use(httpmw.ZapLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("20M"))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, httpmw.HeaderRequestID},
		ExposeHeaders: []string{echo.HeaderContentDisposition, httpmw.HeaderRequestID, handler.HeaderArchiveObject},
	}))

	ctx := context.Background()

	// Initialize state backend
	logger.Info("Initializing state backend", zap.String("backend", cfg.State.Backend))
	var (
		stateRepo   repositories.StateRepository
		archiveRepo repositories.ArchiveRepository
	)
	switch cfg.State.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer database.CloseDB(db)

		// Production deployments should manage schema via scripts/migrate.go
		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				logger.Fatal("DB_AUTO_MIGRATE is enabled in production; run scripts/migrate.go instead")
			}
			n, err := database.Migrate(db, migrate.Up)
			if err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}
			logger.Info("Migrations applied", zap.Int("count", n))
		}

		stateRepo = repository.NewStateRepository(db)
		archiveRepo = repository.NewArchiveRepository(db)

	case config.BackendRedis:
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()

		stateRepo = repository.NewRedisStateRepository(redisClient, cfg.Redis.KeyPrefix)
		archiveRepo = repository.NewMemoryArchiveRepository()

	default:
		store := cache.NewMemoryStore()
		defer store.Close()

		stateRepo = repository.NewMemoryStateRepository(store)
		archiveRepo = repository.NewMemoryArchiveRepository()
	}

	// Initialize services
	meetingService := meeting.NewMeetingService(stateRepo, logger)
	backupService := backup.NewBackupService(stateRepo, logger)
	pdfExporter := export.NewPDFExporter(cfg.Export, logger)
	spreadsheetExporter := export.NewSpreadsheetExporter(cfg.Export, logger)

	if n, err := meetingService.MigrateLegacyKeys(ctx); err != nil {
		logger.Fatal("Failed to migrate legacy meeting history", zap.Error(err))
	} else if n > 0 {
		logger.Info("Legacy meeting history migrated", zap.Int("meetings", n))
	}

	// Export archive is optional
	var archiveService archive.Service
	if cfg.Storage.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage, logger)
		if err != nil {
			logger.Fatal("Failed to connect to object storage", zap.Error(err))
		}
		archiveService = archive.NewArchiveService(minioClient, archiveRepo, logger)
		logger.Info("Export archive enabled", zap.String("bucket", cfg.Storage.BucketName))
	}

	// Setup router with handlers
	router := handler.NewRouter(
		cfg,
		handler.NewMeetingHandler(meetingService, logger),
		handler.NewExportHandler(meetingService, pdfExporter, spreadsheetExporter, archiveService, logger),
		handler.NewAnalysisHandler(logger),
		handler.NewValidationHandler(logger),
		handler.NewBackupHandler(backupService, logger),
		handler.NewStateHandler(meetingService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server stopped gracefully")
}
