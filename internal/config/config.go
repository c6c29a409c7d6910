// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	APIURL *url.URL
	Port   string

	// Database
	DataDir string

	// Logging
	GinMode   string
	LogFormat string

	// Sessions
	SessionTTL time.Duration

	// Sweeper
	SweepInterval time.Duration

	// AMQP, alert mails are only sent if the URL is set
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// LoadEnvFile loads a .env file from the working directory. A missing
// file is not an error, variables already set are not overwritten.
func LoadEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not load environment file: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var errors []string

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "data"),
		GinMode:      getEnv("GIN_MODE", "release"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "moneywise"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "alert_mails"),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else {
		u, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", apiURL))
		} else {
			cfg.APIURL = u
		}
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", cfg.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if cfg.LogFormat != "" && cfg.LogFormat != "human" && cfg.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", cfg.LogFormat))
	}

	var err error
	cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", 720*time.Hour)
	if err != nil {
		errors = append(errors, err.Error())
	} else if cfg.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", cfg.SessionTTL))
	}

	cfg.SweepInterval, err = getEnvDuration("SWEEP_INTERVAL", time.Hour)
	if err != nil {
		errors = append(errors, err.Error())
	} else if cfg.SweepInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid sweep interval %v: must be at least 1 second", cfg.SweepInterval))
	}

	if cfg.AMQPURL != "" {
		if parsedURL, err := url.Parse(cfg.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if cfg.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if cfg.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return cfg, nil
}

// DatabasePath is the path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "moneywise.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %v", key, value, err)
	}
	return d, nil
}
