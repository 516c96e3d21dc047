// Package config loads the advisor configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultGRPCAddr = ":8080"
	defaultHTTPAddr = ":8081"
	defaultAPIToken = "dev-token"
)

// Config holds application configuration
type Config struct {
	GRPCAddr       string
	HTTPAddr       string
	APIToken       string
	LogLevel       string
	LogPretty      bool
	CORSOrigins    []string
	ProjectionSeed uint64 // 0 = a fresh seed per projection
}

// Load reads configuration from environment variables
// A .env file in the working directory is loaded first if present
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GRPCAddr:       getEnv("GRPC_ADDR", defaultGRPCAddr),
		HTTPAddr:       getEnv("HTTP_ADDR", defaultHTTPAddr),
		APIToken:       getEnv("API_TOKEN", defaultAPIToken),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvAsBool("LOG_PRETTY", false),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		ProjectionSeed: getEnvAsUint("PROJECTION_SEED", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.GRPCAddr == "" {
		return errors.New("GRPC_ADDR must not be empty")
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.APIToken == "" {
		return errors.New("API_TOKEN must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
