package config

import (
	"os"
	"strconv"
	"time"

	"structura/internal/models"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	Store struct {
		Capacity int
	}
	Thresholds models.Thresholds
	Simulator  struct {
		Enabled  bool
		Interval time.Duration
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// Store
	cfg.Store.Capacity = getEnvAsInt("STORE_CAPACITY", 50)

	// Пороги тревоги по датчикам
	cfg.Thresholds.Strain = getEnvAsFloat("THRESHOLD_STRAIN", 1000)
	cfg.Thresholds.Vibration = getEnvAsFloat("THRESHOLD_VIBRATION", 500)
	cfg.Thresholds.Displacement = getEnvAsFloat("THRESHOLD_DISPLACEMENT", 100)
	cfg.Thresholds.Acceleration = getEnvAsFloat("THRESHOLD_ACCELERATION", 200)

	// Simulator
	cfg.Simulator.Enabled = getEnvAsBool("SIMULATOR_ENABLED", false)
	cfg.Simulator.Interval = getEnvAsDuration("SIMULATOR_INTERVAL", 5*time.Second)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
