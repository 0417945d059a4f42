// Package config loads runtime settings and builds the application
// logger. Settings come from a config file when present, with
// environment variables taking precedence.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable the dashboard core reads at startup.
type Config struct {
	ProjectID string `mapstructure:"PROJECT_ID"`

	// Simulated backend latencies.
	APILatencyMS   int `mapstructure:"API_LATENCY_MS"`
	OAuthLatencyMS int `mapstructure:"OAUTH_LATENCY_MS"`

	// Snapshot seeding.
	SnapshotPath string `mapstructure:"SNAPSHOT_PATH"`

	// Logging.
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`
}

// Load reads configuration from path (a directory holding a .env file)
// and the environment. A missing file is fine; environment variables
// alone can carry the whole config.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("PROJECT_ID", "default")
	v.SetDefault("API_LATENCY_MS", 1000)
	v.SetDefault("OAUTH_LATENCY_MS", 1500)
	v.SetDefault("SNAPSHOT_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// APILatency returns the ordinary call latency as a duration.
func (c Config) APILatency() time.Duration {
	return time.Duration(c.APILatencyMS) * time.Millisecond
}

// OAuthLatency returns the OAuth handshake latency as a duration.
func (c Config) OAuthLatency() time.Duration {
	return time.Duration(c.OAuthLatencyMS) * time.Millisecond
}
