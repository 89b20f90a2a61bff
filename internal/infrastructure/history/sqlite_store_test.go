package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/descry-dev/descry/internal/domain"
)

type captureLogger struct {
	warns []string
}

func (l *captureLogger) Debug(string, map[string]interface{}) {}
func (l *captureLogger) Info(string, map[string]interface{})  {}
func (l *captureLogger) Warn(msg string, _ map[string]interface{}) {
	l.warns = append(l.warns, msg)
}
func (l *captureLogger) Error(string, error, map[string]interface{}) {}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"), nil)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	first := entry("SGVsbG8=", "Hello", domain.KindBase64, base)
	second := entry("Khoor", "Hello", domain.KindCaesar, base.Add(time.Minute))
	for _, e := range []domain.HistoryEntry{first, second} {
		if err := store.Save(e); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Records() = %d entries, want 2", len(records))
	}
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Fatalf("Records() order = [%s %s], want newest first", records[0].ID, records[1].ID)
	}

	found, err := store.Records(0, "caesar")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].ResolvedKind != domain.KindCaesar {
		t.Fatalf("Records(0, caesar) = %+v, want the caesar entry", found)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err = store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("Records() after Clear = %d entries, want 0", len(records))
	}
}

// An unusable database degrades to the jsonl fallback, and the degradation
// is logged rather than swallowed.
func TestSQLiteStoreDegradesWithWarning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")
	// A directory at the database path makes initialization fail.
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}

	log := &captureLogger{}
	store := newSQLiteStoreAt(path, log)
	if store.db != nil {
		t.Fatal("store kept a database handle despite failed initialization")
	}
	if len(log.warns) != 1 {
		t.Fatalf("warnings logged = %d, want 1", len(log.warns))
	}

	// The degraded store still records through the fallback.
	if err := store.Save(entry("Uryyb", "Hello", domain.KindRot13, time.Now().UTC())); err != nil {
		t.Fatalf("Save() via fallback error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() via fallback error = %v", err)
	}
	if len(records) != 1 || records[0].ResolvedKind != domain.KindRot13 {
		t.Fatalf("Records() via fallback = %+v, want the rot13 entry", records)
	}
}
