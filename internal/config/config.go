package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	// StationIDEnv names the environment variable that, when set,
	// overrides the demo station identifier.
	StationIDEnv string `json:"station_id_env" mapstructure:"station_id_env"`
	// ValuesFile is an optional YAML file overriding the default demo values.
	ValuesFile string `json:"values_file" mapstructure:"values_file"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.StationIDEnv == "" {
		cfg.Seed.StationIDEnv = "DEMO_STATION_ID"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	return nil
}
