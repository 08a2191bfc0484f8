// Package config loads settings for the demo binary.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvEnv      = "TRACEDEMO_ENV"
	EnvLogLevel = "TRACEDEMO_LOG_LEVEL"
	EnvLogFile  = "TRACEDEMO_LOG_FILE"
	EnvColor    = "TRACEDEMO_COLOR"
)

// Config holds demo configuration values.
type Config struct {
	Env string `validate:"required,oneof=dev prod"`
	Log struct {
		Level string `validate:"required,oneof=debug info warn error"`
		File  string
	}
	Color string `validate:"required,oneof=auto always never"`
}

var validate = validator.New()

// Load reads an optional dotenv file, then the environment. A missing
// envFile is not an error; an unreadable one is.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var c Config
	c.Env = strings.ToLower(getenv(EnvEnv, "prod"))
	c.Log.Level = strings.ToLower(getenv(EnvLogLevel, "info"))
	c.Log.File = os.Getenv(EnvLogFile)
	c.Color = strings.ToLower(getenv(EnvColor, "auto"))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field values, e.g. after command-line overrides.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
