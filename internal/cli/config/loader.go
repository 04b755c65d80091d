package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/tokrand-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tokrand", "config.yaml")
}

// Load builds the configuration from defaults, the config file,
// TOKRAND_* environment variables and overrides, then verifies it.
//
// An explicit path must exist; the default path is used only if present.
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg := Default()
	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
	)
	if err := l.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
