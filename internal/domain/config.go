// Package domain defines core business entities and value objects for descry.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures.
package domain

// Config mirrors ~/.descry/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Preferences         Preferences     `yaml:"preferences"`
	History             HistorySettings `yaml:"history"`
	Files               FileSettings    `yaml:"files"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultMode  string `yaml:"default_mode"`
	DefaultShift int    `yaml:"default_shift"`
	Color        string `yaml:"color"`
}

// HistorySettings configures decode history persistence.
type HistorySettings struct {
	Backend      string `yaml:"backend"`
	DefaultLimit int    `yaml:"default_limit"`
}

// FileSettings bounds the decode-file operation.
type FileSettings struct {
	MaxSizeBytes      int64    `yaml:"max_size_bytes"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// History backend literals accepted in config.
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendFile   = "file"
	HistoryBackendOff    = "off"
)
