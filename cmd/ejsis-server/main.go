package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"ejsis-server/internal/config"
	"ejsis-server/internal/database"
	httpapi "ejsis-server/internal/http"
	"ejsis-server/internal/logger"
	"ejsis-server/internal/mailer"
	"ejsis-server/internal/report"
	"ejsis-server/internal/repository"
	"ejsis-server/internal/service"
	"ejsis-server/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "ejsis-server")
	if err != nil {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	// Records live in postgres when available; the in-memory repo keeps
	// local development working without one.
	var db *sql.DB
	var recordsRepo repository.RecordsRepo = repository.NewMemoryRecordsRepo()
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			recordsRepo = repository.NewPostgresRecordsRepo(db)
			log.Info("DB enabled for ejsis-server")
		} else {
			log.Warn("DB enabled but connection failed, falling back to in-memory records", zap.Error(err))
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	statusStore := store.NewStatusStore(redisClient, 30*24*time.Hour)

	photoStore := store.NewPhotoStore(cfg.Dirs.Uploads)
	generator := report.NewGenerator(photoStore, cfg.Dirs.Assets, cfg.Dirs.Output, log)
	reportMailer := mailer.New(cfg.SMTP, cfg.Dirs.Output, log)

	router := httpapi.NewRouter(log)
	router.RegisterJSISRoutes(
		httpapi.NewSubmitHandler(recordsRepo, statusStore, log),
		httpapi.NewPhotoHandler(photoStore, log),
		httpapi.NewRecordsHandler(recordsRepo, generator, reportMailer, statusStore, log),
		httpapi.NewExportHandler(recordsRepo, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("HTTP server exited", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
