package engine

import (
	"testing"

	"github.com/descry-dev/descry/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.EncodingKind
	}{
		{name: "backslash decimal escapes", text: `\72\101\108\108\111`, want: domain.KindDecimal},
		{name: "even hex string", text: "48656c6c6f", want: domain.KindHex},
		{name: "hex with whitespace", text: "48 65 6c 6c 6f", want: domain.KindHex},
		{name: "padded base64", text: "SGVsbG8=", want: domain.KindBase64},
		{name: "unpadded base64 multiple of four", text: "SGVsbG9v", want: domain.KindBase64},
		{name: "percent encoded", text: "Hello%20World", want: domain.KindURL},
		{name: "shifted prose falls back to caesar", text: "Khoor Zruog", want: domain.KindCaesar},
		{name: "empty string falls back to caesar", text: "", want: domain.KindCaesar},
		{name: "percent with space is not url", text: "Hello %20 World", want: domain.KindCaesar},
		{name: "odd hex length falls through", text: "48656c6c6", want: domain.KindCaesar},
		{name: "base64 with interior padding falls through", text: "SG=sbG8=", want: domain.KindCaesar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

// A plain digit string matches the shape of decimal, hex, and base64 at
// once; precedence must hand it to decimal.
func TestClassifyDigitStringPrecedence(t *testing.T) {
	if got := Classify("12345678"); got != domain.KindDecimal {
		t.Fatalf("Classify(\"12345678\") = %s, want decimal", got)
	}
	// Bare backslashes strip to nothing, so this is not decimal.
	if got := Classify(`\\`); got == domain.KindDecimal {
		t.Fatalf("Classify(%q) = decimal, want anything else", `\\`)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	inputs := []string{"48656c6c6f", "SGVsbG8=", "Khoor", "Hello%20World", `\72\101`}
	for _, text := range inputs {
		first := Classify(text)
		for i := 0; i < 5; i++ {
			if got := Classify(text); got != first {
				t.Fatalf("Classify(%q) flapped between %s and %s", text, first, got)
			}
		}
	}
}
