// Package config loads server configuration from an optional YAML
// file with environment-variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":5000".
	Listen string `yaml:"listen" env:"SUKOON_LISTEN"`

	// MongoURI is the MongoDB connection string.
	MongoURI string `yaml:"mongo_uri" env:"MONGODB_URI"`

	// MongoDB is the database name.
	MongoDB string `yaml:"mongo_db" env:"SUKOON_DB"`

	// UploadDir is where medical record uploads are stored.
	UploadDir string `yaml:"upload_dir" env:"SUKOON_UPLOAD_DIR"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:    ":5000",
		MongoURI:  "mongodb://localhost:27017",
		MongoDB:   "sukoon",
		UploadDir: "uploads",
	}
}

// Load builds the effective configuration: defaults, then the YAML
// file at path if one exists, then environment overrides. An empty
// path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config env: %w", err)
	}
	return cfg, nil
}
