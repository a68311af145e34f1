package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vocabapi/internal/config"
	"vocabapi/internal/database"
	"vocabapi/internal/database/migration"
	handlers "vocabapi/internal/http/handler"
	"vocabapi/internal/http/middleware"
	"vocabapi/internal/logger"
	"vocabapi/internal/otel"
	"vocabapi/internal/repository"
	"vocabapi/internal/repository/memory"
	"vocabapi/internal/repository/postgres"
	"vocabapi/internal/service"
	"vocabapi/internal/storage"
)

// @title Vocabulary Folder API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, os.Stdout)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server_failed", zap.Error(err))
	}
}

type repositories struct {
	users       repository.UserRepository
	folders     repository.FolderRepository
	words       repository.WordRepository
	assignments repository.AssignmentRepository
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	repos, db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	images, err := openImages(ctx, cfg)
	if err != nil {
		return err
	}

	reg := prometheus.DefaultRegisterer
	imageSvc, err := service.NewImageService(repos.words, repos.assignments, images,
		service.ImageOptions{Prefix: cfg.Images.Prefix, MaxBytes: cfg.Images.MaxBytes}, reg, log)
	if err != nil {
		return err
	}
	svcs := handlers.Services{
		Identity:    service.NewIdentityService(repos.users, cfg.Identity.Email, cfg.Identity.Name, log),
		Folders:     service.NewFolderService(repos.folders, log),
		Words:       service.NewWordService(repos.words, repos.assignments, log),
		Images:      imageSvc,
		Assignments: service.NewAssignmentService(repos.folders, repos.words, repos.assignments, log),
	}

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// multipart framing on top of the largest accepted image
		BodyLimit:    int(2 * cfg.Images.MaxBytes),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMW.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	handlers.RegisterRoutes(app, pinger, svcs)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting",
			zap.String("addr", addr),
			zap.String("store_driver", cfg.StoreDriver),
			zap.String("image_backend", cfg.Images.Backend),
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server_stopped")
	return nil
}

// openStore returns the repositories for the configured driver. db is nil for the
// in-memory driver.
func openStore(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (repositories, *sql.DB, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		s := memory.NewStore()
		log.Warn("store_in_memory", zap.String("reason", "data is lost on restart"))
		return repositories{s.Users(), s.Folders(), s.Words(), s.Assignments()}, nil, nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("migrate database: %w", err)
		}
		return repositories{
			users:       postgres.NewUserPostgres(db),
			folders:     postgres.NewFolderPostgres(db),
			words:       postgres.NewWordPostgres(db),
			assignments: postgres.NewAssignmentPostgres(db),
		}, db, nil
	default:
		return repositories{}, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openImages(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Images.Backend {
	case config.ImageBackendLocal:
		s, err := storage.NewLocal(cfg.Images.Dir)
		if err != nil {
			return nil, fmt.Errorf("init local image store: %w", err)
		}
		return s, nil
	case config.ImageBackendMinIO:
		s, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("init minio image store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown IMAGE_BACKEND %q", cfg.Images.Backend)
	}
}
