// Package bootstrap builds the analyzer service from configuration. It is
// shared by the HTTP server and the CLI.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/application"
	appai "github.com/bryanwahyu/legal-doc-analyzer/internal/application/ai"
	appanalysis "github.com/bryanwahyu/legal-doc-analyzer/internal/application/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/config"
	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/ai/openai"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/db/file"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/legal-doc-analyzer/internal/infra/db/mysql"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/db/postgres"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/executor/simulated"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/render"
	minioStore "github.com/bryanwahyu/legal-doc-analyzer/internal/infra/storage"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/middleware"
)

// NewLogger builds the slog logger described by cfg.Log.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// App is a wired service plus the resources it holds.
type App struct {
	Service *appanalysis.Service
	Checks  map[string]middleware.HealthChecker
	db      *sql.DB
	stop    context.CancelFunc
}

func (a *App) Close() error {
	if a.stop != nil {
		a.stop()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Build wires the service. pub may be nil (no event stream).
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, pub domain.Publisher) (*App, error) {
	app := &App{Checks: map[string]middleware.HealthChecker{}}

	repo, err := app.openHistory(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions := memory.NewSessionRepo()
	sweepCtx, stop := context.WithCancel(context.Background())
	app.stop = stop
	go sessions.Janitor(sweepCtx, cfg.Sessions.SweepInterval, cfg.Sessions.TTL, logger)

	svc := &appanalysis.Service{
		Sessions: sessions,
		Runner:   simulated.NewRunner(cfg.Pipeline.Speed),
		Scorer:   simulated.NewScorer(),
		Renderer: render.New(),
		History:  repo,
		Events:   pub,
		Metrics:  middleware.RunMetrics{},
		Clock:    application.SystemClock{},
		Logger:   logger,
	}

	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx, minioStore.Options{
			Endpoint:  cfg.Minio.Endpoint,
			Region:    cfg.Minio.Region,
			Bucket:    cfg.Minio.BucketName,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			UseSSL:    cfg.Minio.UseSSL,
			Prefix:    cfg.Minio.Prefix,
			Presign:   cfg.Minio.Presign,
		})
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("minio init: %w", err)
		}
		svc.Reports = store
		logger.Info("report archive enabled", "bucket", cfg.Minio.BucketName)
	}

	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		svc.Insights = appai.NewService(client, logger)
		logger.Info("insights backend enabled", "model", cfg.OpenAI.Model)
	}

	app.Service = svc
	return app, nil
}

func (a *App) openHistory(ctx context.Context, cfg *config.Config) (history.Repository, error) {
	switch cfg.History.Driver {
	case "memory":
		a.Checks["history"] = middleware.StaticChecker{"driver": "memory", "capacity": strconv.Itoa(history.MaxEntries)}
		return memory.NewHistoryRepo(), nil
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("mysql connect: %w", err)
		}
		if err := mysqlp.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("mysql migrate: %w", err)
		}
		a.db = db
		a.Checks["database"] = &middleware.DatabaseHealthChecker{DB: db, Driver: "mysql"}
		return mysqlp.NewHistoryRepository(db), nil
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
		a.db = db
		a.Checks["database"] = &middleware.DatabaseHealthChecker{DB: db, Driver: "postgres"}
		return postgres.NewHistoryRepository(db), nil
	default:
		a.Checks["history"] = &middleware.HistoryFileChecker{Path: cfg.History.Path}
		return file.NewHistoryRepo(cfg.History.Path), nil
	}
}
