package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded configuration against its struct tags
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s=%v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// Warnings reports non-fatal configuration issues worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.StoreDriver == StoreDriverPostgres && cfg.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if cfg.APIKey == "" && !cfg.IsDevelopment() {
		warnings = append(warnings, "API_KEY is not set - the HTTP API is unauthenticated")
	}

	if cfg.StoreDriver == StoreDriverMemory {
		warnings = append(warnings, "STORE_DRIVER is memory - state is lost on restart")
	}

	return warnings
}
