package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/descry-dev/descry/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return &FileStore{path: filepath.Join(t.TempDir(), "history.jsonl")}
}

func entry(original, decoded string, kind domain.EncodingKind, at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:             uuid.New(),
		OriginalText:   original,
		DecodedText:    decoded,
		ResolvedKind:   kind,
		OriginalLength: len(original),
		DecodedLength:  len(decoded),
		CreatedAt:      at,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
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
	// Newest first.
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Fatalf("Records() order = [%s %s], want newest first", records[0].ID, records[1].ID)
	}
	if records[1].ResolvedKind != domain.KindBase64 {
		t.Fatalf("resolved kind = %s, want base64", records[1].ResolvedKind)
	}
}

func TestFileStoreLimitAndSearch(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()
	inputs := []domain.HistoryEntry{
		entry("48656c6c6f", "Hello", domain.KindHex, base),
		entry("Uryyb", "Hello", domain.KindRot13, base.Add(time.Second)),
		entry("Hello%20World", "Hello World", domain.KindURL, base.Add(2*time.Second)),
	}
	for _, e := range inputs {
		if err := store.Save(e); err != nil {
			t.Fatal(err)
		}
	}

	limited, err := store.Records(2, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Fatalf("Records(2) = %d entries, want 2", len(limited))
	}

	found, err := store.Records(0, "rot13")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].ResolvedKind != domain.KindRot13 {
		t.Fatalf("Records(0, rot13) = %+v, want one rot13 entry", found)
	}

	byText, err := store.Records(0, "world")
	if err != nil {
		t.Fatal(err)
	}
	if len(byText) != 1 || byText[0].ResolvedKind != domain.KindURL {
		t.Fatalf("Records(0, world) = %+v, want the url entry", byText)
	}
}

func TestFileStoreClearAndExport(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(entry("Uryyb", "Hello", domain.KindRot13, time.Now())); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	if err := store.ExportJSON(dest); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || len(data) == 0 {
		t.Fatalf("export file unreadable or empty: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("Records() after Clear = %d entries, want 0", len(records))
	}
	// Clearing an already-clear store stays quiet.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}
