package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/bootstrap"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/config"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/events"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/httpserver"
)

func main() {
	// .env optional, env asli tetap menang
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := bootstrap.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub(events.DefaultBuffer)
	app, err := bootstrap.Build(ctx, cfg, logger, hub)
	if err != nil {
		logger.Error("init failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	handler := httpserver.NewRouter(httpserver.Options{
		Service:        app.Service,
		Hub:            hub,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		APIKeys:        cfg.Auth.APIKeys,
		RateCapacity:   cfg.RateLimit.Capacity,
		RateRefill:     cfg.RateLimit.RefillRate,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
		HealthCheckers: app.Checks,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	// run server
	eg.Go(func() error {
		logger.Info("server listening", "addr", addr, "history", cfg.History.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
