package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "DATABASE_URL", "DEFAULT_CITY", "MAX_RESULTS", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Port != 5000 || c.Env != "development" || c.DatabaseURL != "data/kisanmitra.db" {
		t.Errorf("defaults = %+v", c)
	}
	if c.OTPTTL != 5*time.Minute || c.SessionTTL != 168*time.Hour {
		t.Errorf("ttl defaults = %v / %v", c.OTPTTL, c.SessionTTL)
	}
	if c.SuitabilityNormalizer != 105 || c.SuitabilityCap != 98 || c.MaxResults != 8 {
		t.Errorf("ranking defaults = %+v", c)
	}
	if c.LogLevel != slog.LevelInfo || !c.IsDevelopment() || c.CORSOrigins != nil {
		t.Errorf("misc defaults = %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("MAX_RESULTS", "not-a-number")
	t.Setenv("SUITABILITY_NORMALIZER", "111")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	c := FromEnv()
	if c.Port != 8080 || c.IsDevelopment() {
		t.Errorf("port/env = %d / %q", c.Port, c.Env)
	}
	if c.MaxResults != 8 {
		t.Errorf("invalid MAX_RESULTS should keep default, got %d", c.MaxResults)
	}
	if c.SuitabilityNormalizer != 111 {
		t.Errorf("normalizer = %v", c.SuitabilityNormalizer)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "https://b.example" {
		t.Errorf("origins = %q", c.CORSOrigins)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("level = %v", c.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DEFAULT_CITY=Nagpur\nDEFAULT_SOIL=Black\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Already-set variables are not overridden by the file.
	t.Setenv("DEFAULT_SOIL", "Red")
	t.Setenv("DEFAULT_CITY", "")
	os.Unsetenv("DEFAULT_CITY")

	c, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if c.DefaultCity != "Nagpur" || c.DefaultSoil != "Red" {
		t.Errorf("city/soil = %q / %q", c.DefaultCity, c.DefaultSoil)
	}
}
