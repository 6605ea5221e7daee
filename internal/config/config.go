package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates the runtime settings of the CLI and the watch daemon.
type Config struct {
	DBPath       string
	PollInterval time.Duration
	Logger       LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from the environment, with an optional .env
// file. Missing values fall back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := getEnv("MINDFORGE_DB_PATH", "")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(home, ".mindforge.db")
	}

	return &Config{
		DBPath:       dbPath,
		PollInterval: getDuration("MINDFORGE_POLL_INTERVAL", time.Minute),
		Logger: LoggerConfig{
			Level:    getEnv("MINDFORGE_LOG_LEVEL", "info"),
			Encoding: getEnv("MINDFORGE_LOG_ENCODING", "console"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
