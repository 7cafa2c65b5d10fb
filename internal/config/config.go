package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Dataset generation parameters.
	DatasetSize int
	DatasetSeed int64

	// RotateInterval controls how often the demo seed is rotated and the
	// dataset regenerated. Zero disables rotation.
	RotateInterval time.Duration

	// LiveEnabled toggles the Open-Meteo live-reading endpoint.
	LiveEnabled bool

	// HTTPTimeout applies to outbound live-API calls.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DatasetSize = getenvInt("DATASET_SIZE", 200)
	if cfg.DatasetSize <= 0 {
		return nil, fmt.Errorf("invalid DATASET_SIZE: must be positive, got %d", cfg.DatasetSize)
	}

	seed, err := strconv.ParseInt(getenvDefault("DATASET_SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DATASET_SEED: %w", err)
	}
	cfg.DatasetSeed = seed

	rotateStr := getenvDefault("ROTATE_INTERVAL", "0")
	rotate, err := time.ParseDuration(rotateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ROTATE_INTERVAL: %w", err)
	}
	cfg.RotateInterval = rotate

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.LiveEnabled = getenvBool("LIVE_ENABLED", true)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
