package domain

// EncodingKind enumerates the classical text encodings the engine understands.
// The set is closed: no request may resolve to a kind outside these six.
type EncodingKind string

const (
	KindDecimal EncodingKind = "decimal"
	KindHex     EncodingKind = "hex"
	KindBase64  EncodingKind = "base64"
	KindCaesar  EncodingKind = "caesar"
	KindRot13   EncodingKind = "rot13"
	KindURL     EncodingKind = "url"
)

// KindAuto is a request-only pseudo-value asking the engine to guess the
// encoding. It never appears in an outcome or a history entry.
const KindAuto EncodingKind = "auto"

// DefaultCaesarShift applies when a caesar request carries no shift.
const DefaultCaesarShift = 3

// Kinds returns the concrete encoding kinds in classifier precedence order.
func Kinds() []EncodingKind {
	return []EncodingKind{KindDecimal, KindHex, KindBase64, KindCaesar, KindRot13, KindURL}
}

// ParseKind maps a mode literal to an EncodingKind. The second result is
// false for anything outside the recognized literals (auto included).
func ParseKind(mode string) (EncodingKind, bool) {
	switch EncodingKind(mode) {
	case KindAuto, KindDecimal, KindHex, KindBase64, KindCaesar, KindRot13, KindURL:
		return EncodingKind(mode), true
	default:
		return "", false
	}
}

// DecodeRequest captures one decode operation as it arrives from the CLI.
type DecodeRequest struct {
	Text string
	// Kind may be KindAuto, in which case the classifier resolves it.
	Kind EncodingKind
	// Shift applies only when the resolved kind is caesar; nil selects the
	// configured default.
	Shift *int
}

// DecodeOutcome is the success result of a decode operation. Failures travel
// as typed errors, never as a partially filled outcome.
type DecodeOutcome struct {
	DecodedText  string
	ResolvedKind EncodingKind
	// Lengths are counted in Unicode code points, for input and output alike.
	OriginalLength int
	DecodedLength  int
}
