// Command server runs the trainee revalidation HTTP API.
//
// It loads configuration from the environment (with optional .env support),
// opens the SQLite store, optionally starts the doctor feed subscriber, and
// serves the REST API with graceful shutdown.
//
// @title       Trainee Revalidation API
// @version     1.0
// @description Paginated, searchable trainee doctor directory with notes and admin lookups.
// @BasePath    /api
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medreg/revalidation-backend/internal/config"
	httpapi "github.com/medreg/revalidation-backend/internal/http"
	"github.com/medreg/revalidation-backend/internal/ingest"
	"github.com/medreg/revalidation-backend/internal/observability"
	"github.com/medreg/revalidation-backend/internal/repo"
	"github.com/medreg/revalidation-backend/internal/services"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	setupLogging(cfg)

	log.Info().Str("version", version).Str("environment", cfg.Environment).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("db tracing unavailable")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	// Doctor feed subscriber keeps the directory current while the API serves.
	if cfg.Ingest.Enabled {
		docSvc := &services.DoctorService{DB: db, PageSize: cfg.PageSize, Sort: cfg.Sort}
		sub, err := ingest.NewSubscriber(cfg.Ingest.Addr, cfg.Ingest.Channel, docSvc)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Ingest.Addr).Msg("feed subscriber failed")
		}
		defer func() { _ = sub.Close() }()
		if err := sub.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("feed subscribe failed")
		}
		log.Info().Str("channel", cfg.Ingest.Channel).Msg("doctor feed subscribed")
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("stopped")
}

// setupLogging applies the configured level and output format to the global
// zerolog logger.
func setupLogging(cfg config.Config) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
