package config

import (
	"os"
	"strconv"

	"eisview/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port       string
	StatusPort string
	GinMode    string
}

// DataConfig holds measurement-file ingest settings
type DataConfig struct {
	Dir           string
	FileExt       string
	IngestWorkers int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8050"),
			StatusPort: getEnvOrDefault("STATUS_PORT", "8051"),
			GinMode:    getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			Dir:           getEnvOrDefault("DATA_DIR", "./txt"),
			FileExt:       getEnvOrDefault("FILE_EXT", ".mpt"),
			IngestWorkers: getEnvIntOrDefault("INGEST_WORKERS", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Data.FileExt == "" || config.Data.FileExt[0] != '.' {
		return errors.ConfigInvalid("file extension must start with '.'")
	}
	if config.Data.IngestWorkers < 1 {
		return errors.ConfigInvalid("ingest worker count must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
