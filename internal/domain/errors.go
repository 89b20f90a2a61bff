package domain

import "fmt"

// ValidationError reports a malformed request shape (empty text, unknown
// mode literal, non-integer shift). It is raised by the boundary layer
// before the engine runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DecodeError reports that a decoder could not interpret its input under the
// claimed or resolved encoding. Decoding is deterministic, so the failure is
// permanent for that input.
type DecodeError struct {
	Kind   EncodingKind
	Reason string
	cause  error
}

// NewDecodeError builds a DecodeError without an underlying cause.
func NewDecodeError(kind EncodingKind, reason string) *DecodeError {
	return &DecodeError{Kind: kind, Reason: reason}
}

// WrapDecodeError builds a DecodeError around an underlying parser error.
func WrapDecodeError(kind EncodingKind, reason string, cause error) *DecodeError {
	return &DecodeError{Kind: kind, Reason: reason, cause: cause}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode failed: %s", e.Kind, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// UnsupportedKindError reports a kind outside the closed enumeration reaching
// the dispatcher. Unreachable when boundary validation is correct; kept as a
// guard so the failure is visible rather than silent.
type UnsupportedKindError struct {
	Kind EncodingKind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported encoding kind %q", e.Kind)
}
