package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/pkg/filesystem"
	"github.com/descry-dev/descry/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.descry/history/history.db database.
// When the database cannot be opened the store degrades to the jsonl
// FileStore; the degradation is logged, never silent.
func NewSQLiteStore(log ports.Logger) *SQLiteStore {
	return newSQLiteStoreAt(filesystem.DescryDir("history", "history.db"), log)
}

func newSQLiteStoreAt(path string, log ports.Logger) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		warnFallback(log, path, err)
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		warnFallback(log, path, err)
		return &SQLiteStore{path: path}
	}
	return store
}

func warnFallback(log ports.Logger, path string, err error) {
	if log == nil {
		return
	}
	log.Warn("sqlite history unavailable, falling back to jsonl", map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	})
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS decodes (
		id TEXT PRIMARY KEY,
		original_text TEXT,
		decoded_text TEXT,
		resolved_kind TEXT,
		original_length INTEGER,
		decoded_length INTEGER,
		created_at TEXT
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, ".db") + ".jsonl"}
}

// Save inserts a new entry.
func (s *SQLiteStore) Save(entry domain.HistoryEntry) error {
	if s.db == nil {
		return s.fallback().Save(entry)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO decodes
		(id, original_text, decoded_text, resolved_kind, original_length, decoded_length, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		entry.OriginalText,
		entry.DecodedText,
		string(entry.ResolvedKind),
		entry.OriginalLength,
		entry.DecodedLength,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Records returns history entries newest-first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryEntry, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, original_text, decoded_text, resolved_kind, original_length, decoded_length, created_at FROM decodes")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE original_text LIKE ? OR decoded_text LIKE ? OR resolved_kind LIKE ?")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	builder.WriteString(" ORDER BY datetime(created_at) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var id, kind, created string
		if err := rows.Scan(&id, &entry.OriginalText, &entry.DecodedText, &kind,
			&entry.OriginalLength, &entry.DecodedLength, &created); err != nil {
			return nil, err
		}
		if parsed, err := uuid.Parse(id); err == nil {
			entry.ID = parsed
		}
		entry.ResolvedKind = domain.EncodingKind(kind)
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			entry.CreatedAt = t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM decodes")
	return err
}

// ExportJSON writes the decode table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	entries, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, entries)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
