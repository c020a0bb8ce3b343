package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Match    MatchConfig
	Export   ExportConfig
}

// DatabaseConfig holds master-data store configuration
type DatabaseConfig struct {
	DSN             string
	SQLitePath      string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// MatchConfig holds fuzzy-matching thresholds and fan-out limits
type MatchConfig struct {
	MinScoreAuto float64 // similarity at/above which a fuzzy match auto-accepts
	MinScoreShow float64 // similarity at/above which a suggestion is surfaced
	MaxResults   int     // fuzzy query fan-out limit
	Concurrency  int     // bound on parallel per-part fuzzy queries
}

// ExportConfig holds review-sheet export configuration
type ExportConfig struct {
	OutputDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			SQLitePath:      getEnv("MASTER_DB_PATH", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Match: MatchConfig{
			MinScoreAuto: getEnvAsFloat64("MATCH_MIN_SCORE_AUTO", 0.90),
			MinScoreShow: getEnvAsFloat64("MATCH_MIN_SCORE_SHOW", 0.60),
			MaxResults:   getEnvAsInt("MATCH_MAX_RESULTS", 5),
			Concurrency:  getEnvAsInt("MATCH_CONCURRENCY", 4),
		},
		Export: ExportConfig{
			OutputDir: getEnv("EXPORT_DIR", "."),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Match.MinScoreAuto <= 0 || c.Match.MinScoreAuto > 1 {
		return NewAppError("CONFIG_ERROR", "MATCH_MIN_SCORE_AUTO must be in (0,1]", ErrInvalidInput)
	}
	if c.Match.MinScoreShow < 0 || c.Match.MinScoreShow > c.Match.MinScoreAuto {
		return NewAppError("CONFIG_ERROR", "MATCH_MIN_SCORE_SHOW must be in [0, MATCH_MIN_SCORE_AUTO]", ErrInvalidInput)
	}
	if c.Match.MaxResults <= 0 {
		return NewAppError("CONFIG_ERROR", "MATCH_MAX_RESULTS must be positive", ErrInvalidInput)
	}
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or MASTER_DB_PATH is required", ErrInvalidInput)
	}
	return nil
}
