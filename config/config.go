package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from environment
// variables or Docker secrets. Secrets take precedence over plain
// environment variables when both are present.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: lookup("server_port", "SERVER_PORT", "8080"),
		ServerHost: lookup("server_host", "SERVER_HOST", "0.0.0.0"),

		DBHost:     lookup("db_host", "DB_HOST", "localhost"),
		DBPort:     lookup("db_port", "DB_PORT", "5432"),
		DBUser:     lookup("db_user", "DB_USER", "postgres"),
		DBPassword: lookup("db_password", "DB_PASSWORD", ""),
		DBName:     lookup("db_name", "DB_NAME", "dishlet"),
		DBSSLMode:  lookup("db_ssl_mode", "DB_SSL_MODE", "disable"),

		RedisHost:     lookup("redis_host", "REDIS_HOST", "localhost"),
		RedisPort:     lookup("redis_port", "REDIS_PORT", "6379"),
		RedisPassword: lookup("redis_password", "REDIS_PASSWORD", ""),
		RedisURL:      lookup("redis_url", "REDIS_URL", ""),

		JWTSecret: lookup("jwt_secret", "JWT_SECRET", ""),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	origins := lookup("allowed_origins", "ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// lookup resolves a configuration value. Docker secrets win, then the
// environment variable, then the fallback.
func lookup(secret, envVar, fallback string) string {
	if value := readSecret(secret); value != "" {
		return value
	}
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
