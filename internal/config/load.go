package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied when the environment does not set them.
const (
	defaultPort                 = 8080
	defaultLogLevel             = "info"
	defaultTokenLifetimeMinutes = 60 // 1 hour
	defaultBcryptCost           = 10
)

// Load reads configuration from the environment, with a local .env file (if
// present) loaded first for development convenience. Environment variables
// use the TASKHIVE_ prefix with underscores separating nested keys, e.g.
// TASKHIVE_AUTH_JWT_SECRET. Returns a validated Config or an error.
func Load() (*Config, error) {
	// A missing .env is fine; anything else (unreadable, malformed) is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", defaultBcryptCost)

	v.SetEnvPrefix("TASKHIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys for Unmarshal, so bind the ones
	// we read explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"auth.bcrypt_cost",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
