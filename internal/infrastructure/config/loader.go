package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/descry-dev/descry/assets"
	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/pkg/filesystem"
	"github.com/descry-dev/descry/internal/ports"
)

// FileLoader loads YAML configuration from ~/.descry/config.yaml
// (overridable via DESCRY_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded from the
// embedded defaults; a partial file is hydrated with defaults per key.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, 0o600); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.ValidateConsistency(); err != nil {
		return domain.Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path reports the config file location the loader resolves to.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("DESCRY_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filesystem.DescryDir("config.yaml")
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultMode == "" {
		cfg.Preferences.DefaultMode = string(domain.KindAuto)
	}
	if cfg.Preferences.DefaultShift == 0 {
		cfg.Preferences.DefaultShift = domain.DefaultCaesarShift
	}
	if cfg.Preferences.Color == "" {
		cfg.Preferences.Color = "auto"
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendSQLite
	}
	if cfg.History.DefaultLimit == 0 {
		cfg.History.DefaultLimit = domain.DefaultHistoryLimit
	}
	if cfg.Files.MaxSizeBytes == 0 {
		cfg.Files.MaxSizeBytes = domain.DefaultMaxFileSize
	}
	if len(cfg.Files.AllowedExtensions) == 0 {
		cfg.Files.AllowedExtensions = domain.DefaultAllowedExtensions()
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
