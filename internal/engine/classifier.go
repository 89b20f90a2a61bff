// Package engine implements the classification-and-decode core: a structural
// detection heuristic over six classical text encodings and the per-kind
// decoders. Every function is pure and safe for concurrent use.
package engine

import (
	"strings"

	"github.com/descry-dev/descry/internal/domain"
)

// Classify guesses the encoding of text. It never fails: the rules run in a
// fixed order, the first match wins, and anything unmatched falls back to
// caesar, the most permissive interpretation of letter-shifted prose.
//
// The order is a contract. The rules are not mutually exclusive (an all-digit
// string of length 4 also has the shape of hex and base64), and decimal is
// deliberately checked first, so a plain digit string with no backslashes
// classifies as decimal.
func Classify(text string) domain.EncodingKind {
	switch {
	case looksDecimal(text):
		return domain.KindDecimal
	case looksHex(text):
		return domain.KindHex
	case looksBase64(text):
		return domain.KindBase64
	case looksURL(text):
		return domain.KindURL
	default:
		return domain.KindCaesar
	}
}

// looksDecimal strips backslashes and requires a non-empty all-digit rest.
func looksDecimal(text string) bool {
	stripped := strings.ReplaceAll(text, `\`, "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// looksHex requires only hex digits after whitespace removal, in even count.
func looksHex(text string) bool {
	compact := stripWhitespace(text)
	if compact == "" || len(compact)%2 != 0 {
		return false
	}
	for _, r := range compact {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

// looksBase64 requires the standard alphabet with trailing = padding and a
// length divisible by four.
func looksBase64(text string) bool {
	if text == "" || len(text)%4 != 0 {
		return false
	}
	seenPadding := false
	for _, r := range text {
		switch {
		case r == '=':
			seenPadding = true
		case seenPadding:
			return false
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '/':
		default:
			return false
		}
	}
	return true
}

// looksURL requires at least one percent sign and only characters valid in a
// percent-encoded string.
func looksURL(text string) bool {
	if !strings.ContainsRune(text, '%') {
		return false
	}
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '%', r == '-', r == '_', r == '.', r == '~':
		default:
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, text)
}
