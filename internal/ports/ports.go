// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The decode engine and CLI both depend
// on these abstractions, never on each other's concrete types.
package ports

import (
	"context"

	"github.com/descry-dev/descry/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.descry/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Classifier guesses the encoding of unlabeled text. Implementations are
// pure functions of their input: no failure mode, always a concrete kind.
type Classifier interface {
	Classify(text string) domain.EncodingKind
}

// Decoder applies the transform for one concrete encoding kind. Shift is
// meaningful only for caesar; failure surfaces as a typed error carrying the
// kind that could not interpret the input.
type Decoder interface {
	Decode(text string, kind domain.EncodingKind, shift int) (domain.DecodeOutcome, error)
}

// HistoryRepository persists decode operations and serves them back
// newest-first. Concurrent appends must not corrupt each other; their
// relative ordering is unspecified.
type HistoryRepository interface {
	Save(entry domain.HistoryEntry) error
	Records(limit int, search string) ([]domain.HistoryEntry, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// FileIntake validates and reads a file destined for the decode-file
// operation, enforcing extension and size limits before any decoding runs.
type FileIntake interface {
	Read(path string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
