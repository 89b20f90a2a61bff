// Package history persists decode operations. The primary store is SQLite;
// a JSONL file store serves as fallback and as the lightweight backend.
package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/pkg/filesystem"
	"github.com/descry-dev/descry/internal/ports"
)

// FileStore appends history entries to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a new history store under ~/.descry/history/history.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filesystem.DescryDir("history", "history.jsonl"),
	}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(entry domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records returns entries newest-first, optionally filtered by a keyword over
// original and decoded text and capped at limit (0 means all).
func (f *FileStore) Records(limit int, search string) ([]domain.HistoryEntry, error) {
	all, err := f.load()
	if err != nil {
		return nil, err
	}
	var entries []domain.HistoryEntry
	// Appended oldest-first on disk; walk backwards for newest-first.
	for i := len(all) - 1; i >= 0; i-- {
		if search != "" && !matches(all[i], search) {
			continue
		}
		entries = append(entries, all[i])
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ExportJSON writes all entries to a jsonl file, newest-first.
func (f *FileStore) ExportJSON(dest string) error {
	entries, err := f.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, entries)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var entries []domain.HistoryEntry
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var entry domain.HistoryEntry
		if err := json.Unmarshal(line, &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func matches(entry domain.HistoryEntry, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(entry.OriginalText), needle) ||
		strings.Contains(strings.ToLower(entry.DecodedText), needle) ||
		strings.Contains(string(entry.ResolvedKind), needle)
}

func writeJSONL(dest string, entries []domain.HistoryEntry) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
