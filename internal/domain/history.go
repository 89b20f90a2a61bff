package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one successful decode operation.
type HistoryEntry struct {
	ID             uuid.UUID    `json:"id"`
	OriginalText   string       `json:"original_text"`
	DecodedText    string       `json:"decoded_text"`
	ResolvedKind   EncodingKind `json:"resolved_kind"`
	OriginalLength int          `json:"original_length"`
	DecodedLength  int          `json:"decoded_length"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NewHistoryEntry builds an entry from a request and its outcome.
func NewHistoryEntry(text string, outcome DecodeOutcome) HistoryEntry {
	return HistoryEntry{
		ID:             uuid.New(),
		OriginalText:   text,
		DecodedText:    outcome.DecodedText,
		ResolvedKind:   outcome.ResolvedKind,
		OriginalLength: outcome.OriginalLength,
		DecodedLength:  outcome.DecodedLength,
		CreatedAt:      time.Now().UTC(),
	}
}
