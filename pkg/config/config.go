// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, rate limiting and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// RateLimit contains per-IP rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window; 0 disables limiting
	Requests int

	// WindowSeconds is the rate limit window in seconds
	WindowSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "12000"),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate limit window must be at least 1 second")
	}

	return nil
}
