package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Seed.StationIDEnv != "DEMO_STATION_ID" {
		t.Errorf("Expected station_id_env to be 'DEMO_STATION_ID', got '%s'", cfg.Seed.StationIDEnv)
	}
	if cfg.Seed.ValuesFile != "" {
		t.Errorf("Expected values_file to be empty, got '%s'", cfg.Seed.ValuesFile)
	}
}

func TestLoadHonorsConfiguredValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.provider", "sqlite")
	viper.Set("database.url_env", "DEMO_DB_URL")
	viper.Set("seed.values_file", "demo.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "sqlite" {
		t.Errorf("Expected provider 'sqlite', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DEMO_DB_URL" {
		t.Errorf("Expected url_env 'DEMO_DB_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Seed.ValuesFile != "demo.yaml" {
		t.Errorf("Expected values_file 'demo.yaml', got '%s'", cfg.Seed.ValuesFile)
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := &Config{Database: Database{URLEnv: "CHARGESEED_TEST_DB_URL"}}

	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error when the env var is unset")
	}

	t.Setenv("CHARGESEED_TEST_DB_URL", "postgres://localhost:5432/demo")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("GetDatabaseURL failed: %v", err)
	}
	if url != "postgres://localhost:5432/demo" {
		t.Errorf("Got URL '%s'", url)
	}
}

func TestValidate(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		cfg := &Config{Database: Database{Provider: provider}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected provider '%s' to validate, got %v", provider, err)
		}
	}

	cfg := &Config{Database: Database{Provider: "oracle"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected unsupported provider to fail validation")
	}
	if !strings.Contains(err.Error(), "oracle") {
		t.Errorf("Expected error to name the provider, got %v", err)
	}
}
