package engine

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/descry-dev/descry/internal/domain"
)

// Decode applies the decoder for kind to text and reports the outcome.
// KindAuto resolves through Classify first; the outcome always carries the
// concrete kind that actually ran. Shift is honored only by caesar.
//
// Each call is independent and idempotent. Failures are permanent for a
// given input, so callers must never retry.
func Decode(text string, kind domain.EncodingKind, shift int) (domain.DecodeOutcome, error) {
	if kind == domain.KindAuto {
		kind = Classify(text)
	}

	var decoded string
	var err error
	switch kind {
	case domain.KindDecimal:
		decoded, err = decodeDecimal(text)
	case domain.KindHex:
		decoded, err = decodeHex(text)
	case domain.KindBase64:
		decoded, err = decodeBase64(text)
	case domain.KindCaesar:
		decoded = shiftLetters(text, -shift)
	case domain.KindRot13:
		decoded = shiftLetters(text, -13)
	case domain.KindURL:
		decoded, err = decodeURL(text)
	default:
		return domain.DecodeOutcome{}, &domain.UnsupportedKindError{Kind: kind}
	}
	if err != nil {
		return domain.DecodeOutcome{}, err
	}

	return domain.DecodeOutcome{
		DecodedText:    decoded,
		ResolvedKind:   kind,
		OriginalLength: utf8.RuneCountInString(text),
		DecodedLength:  utf8.RuneCountInString(decoded),
	}, nil
}

// decodeDecimal splits on backslashes and turns each fragment into the
// character with that code. Values are reduced modulo 0x10000, keeping the
// single UTF-16 code-unit semantics of the classic numeric escape form.
func decodeDecimal(text string) (string, error) {
	var b strings.Builder
	for _, fragment := range strings.Split(text, `\`) {
		if fragment == "" {
			continue
		}
		value, err := strconv.ParseUint(fragment, 10, 64)
		if err != nil {
			return "", domain.WrapDecodeError(domain.KindDecimal,
				fmt.Sprintf("fragment %q is not a non-negative integer", fragment), err)
		}
		b.WriteRune(rune(value % 0x10000))
	}
	return b.String(), nil
}

// decodeHex strips whitespace and converts each hex pair to the code point
// with that value. Odd-length input is rejected outright rather than
// truncated to a partial final character.
func decodeHex(text string) (string, error) {
	compact := stripWhitespace(text)
	if len(compact)%2 != 0 {
		return "", domain.NewDecodeError(domain.KindHex, "odd number of hex digits")
	}
	var b strings.Builder
	for i := 0; i < len(compact); i += 2 {
		pair := compact[i : i+2]
		value, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return "", domain.WrapDecodeError(domain.KindHex,
				fmt.Sprintf("invalid hex pair %q", pair), err)
		}
		b.WriteRune(rune(value))
	}
	return b.String(), nil
}

// decodeBase64 decodes the standard alphabet with = padding and requires the
// resulting bytes to be valid UTF-8.
func decodeBase64(text string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", domain.WrapDecodeError(domain.KindBase64, "invalid base64 input", err)
	}
	if !utf8.Valid(raw) {
		return "", domain.NewDecodeError(domain.KindBase64, "decoded bytes are not valid UTF-8")
	}
	return string(raw), nil
}

// decodeURL percent-decodes %XX triplets byte-wise. A literal + stays a
// literal + (this is percent-encoding, not form encoding).
func decodeURL(text string) (string, error) {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return "", domain.WrapDecodeError(domain.KindURL, "malformed percent sequence", err)
	}
	if !utf8.ValidString(decoded) {
		return "", domain.NewDecodeError(domain.KindURL, "decoded bytes are not valid UTF-8")
	}
	return decoded, nil
}

// shiftLetters moves each ASCII letter by delta positions within its own
// case's 26-letter alphabet, wrapping around; everything else passes through.
// Decoding a caesar text means a negative delta.
func shiftLetters(text string, delta int) string {
	offset := ((delta % 26) + 26) % 26
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+rune(offset))%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+rune(offset))%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
