package domain

import "fmt"

// DefaultMaxFileSize bounds decode-file input when not configured (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// DefaultHistoryLimit is the listing limit when none is configured.
const DefaultHistoryLimit = 20

// DefaultAllowedExtensions lists the file extensions decode-file accepts.
func DefaultAllowedExtensions() []string {
	return []string{".txt", ".log", ".dat"}
}

// ResolvedDefaultMode returns the configured default encoding mode,
// falling back to auto when unset.
func (c *Config) ResolvedDefaultMode() EncodingKind {
	if c.Preferences.DefaultMode == "" {
		return KindAuto
	}
	if kind, ok := ParseKind(c.Preferences.DefaultMode); ok {
		return kind
	}
	return KindAuto
}

// ResolvedDefaultShift returns the configured caesar shift, falling back to
// the conventional 3 when unset.
func (c *Config) ResolvedDefaultShift() int {
	if c.Preferences.DefaultShift == 0 {
		return DefaultCaesarShift
	}
	return c.Preferences.DefaultShift
}

// ResolvedHistoryBackend returns the configured backend, defaulting to sqlite.
func (c *Config) ResolvedHistoryBackend() string {
	switch c.History.Backend {
	case HistoryBackendSQLite, HistoryBackendFile, HistoryBackendOff:
		return c.History.Backend
	default:
		return HistoryBackendSQLite
	}
}

// ResolvedHistoryLimit returns the configured listing limit with a floor of 1.
func (c *Config) ResolvedHistoryLimit() int {
	if c.History.DefaultLimit <= 0 {
		return DefaultHistoryLimit
	}
	return c.History.DefaultLimit
}

// ResolvedMaxFileSize returns the configured file size cap with the 10 MiB default.
func (c *Config) ResolvedMaxFileSize() int64 {
	if c.Files.MaxSizeBytes <= 0 {
		return DefaultMaxFileSize
	}
	return c.Files.MaxSizeBytes
}

// ResolvedAllowedExtensions returns the configured extension allowlist or the default.
func (c *Config) ResolvedAllowedExtensions() []string {
	if len(c.Files.AllowedExtensions) == 0 {
		return DefaultAllowedExtensions()
	}
	return c.Files.AllowedExtensions
}

// ValidateConsistency checks the internal consistency of the configuration.
func (c *Config) ValidateConsistency() error {
	if c.Preferences.DefaultMode != "" {
		if _, ok := ParseKind(c.Preferences.DefaultMode); !ok {
			return fmt.Errorf("default mode %s is not a recognized encoding mode", c.Preferences.DefaultMode)
		}
	}
	switch c.History.Backend {
	case "", HistoryBackendSQLite, HistoryBackendFile, HistoryBackendOff:
	default:
		return fmt.Errorf("history backend %s is not one of sqlite, file, off", c.History.Backend)
	}
	if c.Files.MaxSizeBytes < 0 {
		return fmt.Errorf("files.max_size_bytes must not be negative")
	}
	for _, ext := range c.Files.AllowedExtensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("allowed extension %q must start with a dot", ext)
		}
	}
	return nil
}
