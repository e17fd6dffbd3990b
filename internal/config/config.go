// Package config loads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable the service reads at startup.
type Config struct {
	Port        int
	Env         string
	DatabaseURL string

	WeatherAPIKey string
	DefaultCity   string
	DefaultSoil   string
	CORSOrigins   []string

	OTPTTL        time.Duration
	SessionTTL    time.Duration
	OTPRateLimit  int
	OTPRateWindow time.Duration

	SuitabilityNormalizer float64
	SuitabilityCap        int
	MaxResults            int

	PurgeSchedule string
	LogLevel      slog.Level
}

// IsDevelopment reports whether the service runs in development mode,
// where OTPs are echoed back in API responses.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads the given .env files (default ".env") into the process
// environment, then builds a Config. Missing files are skipped; variables
// already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment.
func FromEnv() Config {
	return Config{
		Port:        envIntOrDefault("PORT", 5000),
		Env:         envOrDefault("ENV", "development"),
		DatabaseURL: envOrDefault("DATABASE_URL", "data/kisanmitra.db"),

		WeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		DefaultCity:   envOrDefault("DEFAULT_CITY", "Lucknow"),
		DefaultSoil:   envOrDefault("DEFAULT_SOIL", "Loamy"),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),

		OTPTTL:        time.Duration(envIntOrDefault("OTP_TTL_MINUTES", 5)) * time.Minute,
		SessionTTL:    time.Duration(envIntOrDefault("SESSION_TTL_HOURS", 168)) * time.Hour,
		OTPRateLimit:  envIntOrDefault("OTP_RATE_LIMIT", 5),
		OTPRateWindow: 15 * time.Minute,

		SuitabilityNormalizer: envFloatOrDefault("SUITABILITY_NORMALIZER", 105),
		SuitabilityCap:        envIntOrDefault("SUITABILITY_CAP", 98),
		MaxResults:            envIntOrDefault("MAX_RESULTS", 8),

		PurgeSchedule: envOrDefault("PURGE_SCHEDULE", "@every 1h"),
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v, "default", defaultVal)
	}
	return defaultVal
}

func envFloatOrDefault(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
		slog.Warn("ignoring invalid number setting", "key", key, "value", v, "default", defaultVal)
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
