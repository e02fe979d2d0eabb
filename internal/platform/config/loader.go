package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// New loads configuration for the given data directory.
// Priority: ENV > YAML > defaults (via env-default tags).
// An optional <data>/.env is loaded into the environment first. The YAML path
// is MINDFLOW_CONFIG when set (it must then exist), else <data>/config.yaml
// when present.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}

	if err := godotenv.Load(filepath.Join(dataDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	path := os.Getenv("MINDFLOW_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = filepath.Join(dataDir, "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return Config{}, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	cfg.DataDir = dataDir
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, "mindflow.db")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
