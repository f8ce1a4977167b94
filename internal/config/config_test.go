package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadForTest(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHORE_MONGO__DATABASE", "telemetry")

	cfg, err := loadForTest(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8100 {
		t.Errorf("expected default port 8100, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default shutdown timeout 30s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("expected default mongo URI, got %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "telemetry" {
		t.Errorf("expected database from env, got %q", cfg.Mongo.Database)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHORE_MONGO__DATABASE", "seastate")
	t.Setenv("SHORE_MONGO__URI", "mongodb://db.internal:27018")
	t.Setenv("SHORE_SERVER__PORT", "9200")

	cfg, err := loadForTest(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://db.internal:27018" {
		t.Errorf("mongo URI override not applied: %q", cfg.Mongo.URI)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("server port override not applied: %d", cfg.Server.Port)
	}
}

func TestLoad_MissingDatabase(t *testing.T) {
	_, err := loadForTest(t)
	if err == nil {
		t.Fatal("expected validation error when no database name is configured")
	}
}
