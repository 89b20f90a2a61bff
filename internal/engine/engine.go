package engine

import (
	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/ports"
)

// Engine adapts the package-level functions to the classifier and decoder
// ports. It is stateless; the zero value is ready to use.
type Engine struct{}

// New returns an Engine.
func New() Engine {
	return Engine{}
}

// Classify implements ports.Classifier.
func (Engine) Classify(text string) domain.EncodingKind {
	return Classify(text)
}

// Decode implements ports.Decoder.
func (Engine) Decode(text string, kind domain.EncodingKind, shift int) (domain.DecodeOutcome, error) {
	return Decode(text, kind, shift)
}

var (
	_ ports.Classifier = Engine{}
	_ ports.Decoder    = Engine{}
)
