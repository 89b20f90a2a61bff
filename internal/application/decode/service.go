// Package decode orchestrates the decode use case: request validation,
// classification of auto requests, dispatch to the engine, and recording of
// successful operations in history.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/ports"
)

// Service orchestrates one decode operation end-to-end.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Classifier     ports.Classifier
	Decoder        ports.Decoder
	HistoryStore   ports.HistoryRepository
	Logger         ports.Logger
}

// Run validates req, resolves its encoding, decodes, and appends a history
// entry on success. A history write failure is logged but does not fail the
// operation; the decode itself already succeeded.
func (s *Service) Run(ctx context.Context, req domain.DecodeRequest) (domain.DecodeOutcome, error) {
	if s.ConfigProvider == nil || s.Classifier == nil || s.Decoder == nil || s.Logger == nil {
		return domain.DecodeOutcome{}, errors.New("decode.Service dependencies not satisfied")
	}
	if err := validate(req); err != nil {
		return domain.DecodeOutcome{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.DecodeOutcome{}, fmt.Errorf("load config: %w", err)
	}

	kind := req.Kind
	if kind == domain.KindAuto {
		kind = s.Classifier.Classify(req.Text)
		s.Logger.Debug("classified input", map[string]interface{}{
			"kind":   string(kind),
			"length": len(req.Text),
		})
	}

	shift := cfg.ResolvedDefaultShift()
	if req.Shift != nil {
		shift = *req.Shift
	}

	outcome, err := s.Decoder.Decode(req.Text, kind, shift)
	if err != nil {
		s.Logger.Info("decode failed", map[string]interface{}{
			"kind":  string(kind),
			"error": err.Error(),
		})
		return domain.DecodeOutcome{}, err
	}

	s.record(req.Text, outcome)
	return outcome, nil
}

func (s *Service) record(text string, outcome domain.DecodeOutcome) {
	if s.HistoryStore == nil {
		return
	}
	entry := domain.NewHistoryEntry(text, outcome)
	if err := s.HistoryStore.Save(entry); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{
			"id":    entry.ID.String(),
			"error": err.Error(),
		})
	}
}

func validate(req domain.DecodeRequest) error {
	if req.Text == "" {
		return &domain.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if _, ok := domain.ParseKind(string(req.Kind)); !ok {
		return &domain.ValidationError{
			Field:  "encoding mode",
			Reason: fmt.Sprintf("%q is not a recognized mode", string(req.Kind)),
		}
	}
	return nil
}
