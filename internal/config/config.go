package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. STORYTELLER_PROXY_URL.
const Prefix = "STORYTELLER"

type Config struct {
	ProxyURL     string `envconfig:"PROXY_URL" default:"http://localhost:3001/api/gemini" validate:"required,url"`
	DatabasePath string `envconfig:"DATABASE_PATH"`
	StorageKey   string `envconfig:"STORAGE_KEY" default:"aiStories" validate:"required"`
	DateLayout   string `envconfig:"DATE_LAYOUT" default:"1/2/2006, 3:04:05 PM" validate:"required"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console" validate:"oneof=console json"`
	LogFile     string `envconfig:"LOG_FILE"`
}

// Load reads .env from the project root when present, then the process
// environment.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the project root. Variables already set in the
// environment win.
func LoadEnv() error {
	root, err := FindProjectRoot()
	if err != nil {
		return err
	}
	return godotenv.Load(filepath.Join(root, ".env"))
}
