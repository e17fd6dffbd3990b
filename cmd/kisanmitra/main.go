// Command kisanmitra serves the Smart Kisan Mitra farmer API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talgya/kisan-mitra/internal/api"
	"github.com/talgya/kisan-mitra/internal/auth"
	"github.com/talgya/kisan-mitra/internal/config"
	"github.com/talgya/kisan-mitra/internal/crops"
	"github.com/talgya/kisan-mitra/internal/jobs"
	"github.com/talgya/kisan-mitra/internal/persistence"
	"github.com/talgya/kisan-mitra/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("Smart Kisan Mitra API", "env", cfg.Env, "port", cfg.Port)

	// ── Crop catalog ──────────────────────────────────────────────────
	for _, p := range crops.Catalog() {
		if err := crops.Validate(p); err != nil {
			slog.Error("invalid crop catalog", "error", err)
			os.Exit(1)
		}
	}
	rec := crops.NewRecommender(crops.Config{
		Normalizer: cfg.SuitabilityNormalizer,
		Cap:        cfg.SuitabilityCap,
		Limit:      cfg.MaxResults,
	})
	slog.Info("crop catalog loaded", "crops", len(rec.Catalog), "season", crops.CurrentSeason(time.Now()))

	// ── Database ──────────────────────────────────────────────────────
	db, err := persistence.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "driver", db.Driver())

	// ── Weather ───────────────────────────────────────────────────────
	weatherClient := weather.NewClient(cfg.WeatherAPIKey)
	if weatherClient == nil {
		slog.Warn("OPENWEATHER_API_KEY not set, serving mock weather")
	}

	// ── Housekeeping ──────────────────────────────────────────────────
	scheduler, err := jobs.New(db, cfg.PurgeSchedule)
	if err != nil {
		slog.Error("failed to schedule housekeeping", "error", err)
		os.Exit(1)
	}
	jobs.PurgeExpired(db, time.Now())
	scheduler.Start()

	// ── HTTP API ──────────────────────────────────────────────────────
	authSvc := auth.NewService(db, auth.LogSender{}, cfg.OTPTTL, cfg.SessionTTL)
	apiServer := api.NewServer(cfg, db, authSvc, weatherClient, rec)
	apiServer.Start()

	fmt.Printf("\nSmart Kisan Mitra API running on http://localhost:%d (Ctrl+C to stop)\n", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	scheduler.Stop()

	fmt.Println("Server stopped.")
}
