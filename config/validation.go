package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that values without safe defaults are present.
// Development and test fall back to defaults for everything except the
// JWT secret; production additionally requires real credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "jwt_secret secret or JWT_SECRET environment variable is required")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "db_ssl_mode must not be disable in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
