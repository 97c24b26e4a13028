package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/app"
	"github.com/mark47B/pr-metrics/internal/configs"
	"github.com/mark47B/pr-metrics/internal/domain/repository"
	"github.com/mark47B/pr-metrics/internal/infra/github"
	"github.com/mark47B/pr-metrics/internal/infra/storage/pg"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest"
	"github.com/mark47B/pr-metrics/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pr-metrics: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Хранилище истории опционально
	var (
		snapshots repository.SnapshotRepository
		txManager repository.TxManager
	)
	if cfg.HistoryEnabled {
		db, err := openDB(cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warnw("failed to close db", "error", err)
			}
		}()
		snapshots = pg.NewSnapshotStorage(db)
		txManager = pg.NewTxManager(db, log)
	} else {
		log.Infow("metrics history disabled")
	}

	client := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Timeout, log)
	svc := app.NewService(client, snapshots, txManager, log, app.Options{
		DefaultRepo:       cfg.GitHub.Repo,
		DefaultToken:      cfg.GitHub.Token,
		DetailConcurrency: cfg.GitHub.DetailConcurrency,
	})

	router, err := rest.NewRouter(svc, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-quit:
	}

	log.Infow("shutting down server", "timeout", cfg.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Infow("server exited")
	return nil
}

func openDB(cfg *configs.Config, log *zap.SugaredLogger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := pg.Migrate(db, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Infow("database ready", "migrations", cfg.MigrationsPath)
	return db, nil
}
