// Package config loads runtime configuration from the environment.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Env string `mapstructure:"APP_ENV"` // development | production

	// Galactic Tycoons API
	APIKey          string `mapstructure:"GT_API_KEY"`
	APIBaseURL      string `mapstructure:"GT_API_BASE_URL"`
	CacheTTLSeconds int    `mapstructure:"GT_CACHE_TTL_SECONDS"`

	// Local persistence
	DBPath string `mapstructure:"GT_DB_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("GT_API_BASE_URL", "https://api.g2.galactictycoons.com")
	viper.SetDefault("GT_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("GT_DB_PATH", "gtplan.db")

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
