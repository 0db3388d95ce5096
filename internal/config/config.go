// Package config reads process settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Server
	Port int

	// Figure
	DPI        float64
	FigureSize float64
	OutputDir  string
}

// LoadConfig loads .env if present and reads RANGEVIEWER_* variables.
func LoadConfig() (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:     getEnv("RANGEVIEWER_ENV", "production"),
		LogLevel:   getEnv("RANGEVIEWER_LOG_LEVEL", "info"),
		Port:       getEnvInt("RANGEVIEWER_PORT", 3000),
		DPI:        getEnvFloat("RANGEVIEWER_DPI", 100),
		FigureSize: getEnvFloat("RANGEVIEWER_FIG_SIZE", 8),
		OutputDir:  getEnv("RANGEVIEWER_OUTPUT_DIR", "."),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("RANGEVIEWER_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("RANGEVIEWER_DPI must be positive, got %g", c.DPI)
	}
	if c.FigureSize <= 0 {
		return fmt.Errorf("RANGEVIEWER_FIG_SIZE must be positive, got %g", c.FigureSize)
	}
	return nil
}

// Development reports whether RANGEVIEWER_ENV is "development".
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
