package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/descry-dev/descry/internal/domain"
)

func TestDecodeLiteralScenarios(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  domain.EncodingKind
		shift int
		want  domain.DecodeOutcome
	}{
		{
			name: "decimal escapes",
			text: `\72\101\108\108\111`,
			kind: domain.KindAuto,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello",
				ResolvedKind:   domain.KindDecimal,
				OriginalLength: 19,
				DecodedLength:  5,
			},
		},
		{
			name: "hex pairs",
			text: "48656c6c6f",
			kind: domain.KindAuto,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello",
				ResolvedKind:   domain.KindHex,
				OriginalLength: 10,
				DecodedLength:  5,
			},
		},
		{
			name: "base64 with padding",
			text: "SGVsbG8=",
			kind: domain.KindAuto,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello",
				ResolvedKind:   domain.KindBase64,
				OriginalLength: 8,
				DecodedLength:  5,
			},
		},
		{
			name:  "caesar shift three",
			text:  "Khoor",
			kind:  domain.KindCaesar,
			shift: 3,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello",
				ResolvedKind:   domain.KindCaesar,
				OriginalLength: 5,
				DecodedLength:  5,
			},
		},
		{
			name: "rot13",
			text: "Uryyb",
			kind: domain.KindRot13,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello",
				ResolvedKind:   domain.KindRot13,
				OriginalLength: 5,
				DecodedLength:  5,
			},
		},
		{
			name: "percent encoded",
			text: "Hello%20World",
			kind: domain.KindAuto,
			want: domain.DecodeOutcome{
				DecodedText:    "Hello World",
				ResolvedKind:   domain.KindURL,
				OriginalLength: 13,
				DecodedLength:  11,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text, tt.kind, tt.shift)
			if err != nil {
				t.Fatalf("Decode(%q, %s) error = %v", tt.text, tt.kind, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Decode(%q, %s) mismatch (-want +got):\n%s", tt.text, tt.kind, diff)
			}
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     domain.EncodingKind
		wantKind domain.EncodingKind
	}{
		{name: "odd length hex", text: "48656c6c6", kind: domain.KindHex, wantKind: domain.KindHex},
		{name: "non-hex pair", text: "48zz", kind: domain.KindHex, wantKind: domain.KindHex},
		{name: "invalid base64 characters", text: "not base64!!", kind: domain.KindBase64, wantKind: domain.KindBase64},
		{name: "bad base64 padding", text: "SGVsbG8==", kind: domain.KindBase64, wantKind: domain.KindBase64},
		{name: "base64 of invalid utf8", text: "/w==", kind: domain.KindBase64, wantKind: domain.KindBase64},
		{name: "non-numeric decimal fragment", text: `\72\xx`, kind: domain.KindDecimal, wantKind: domain.KindDecimal},
		{name: "negative decimal fragment", text: `\-72`, kind: domain.KindDecimal, wantKind: domain.KindDecimal},
		{name: "truncated percent sequence", text: "Hello%2", kind: domain.KindURL, wantKind: domain.KindURL},
		{name: "non-hex percent sequence", text: "Hello%zz", kind: domain.KindURL, wantKind: domain.KindURL},
		{name: "percent decoded invalid utf8", text: "%ff", kind: domain.KindURL, wantKind: domain.KindURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text, tt.kind, 0)
			if err == nil {
				t.Fatalf("Decode(%q, %s) succeeded, want DecodeError", tt.text, tt.kind)
			}
			var decodeErr *domain.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Decode(%q, %s) error = %T, want *domain.DecodeError", tt.text, tt.kind, err)
			}
			if decodeErr.Kind != tt.wantKind {
				t.Fatalf("DecodeError kind = %s, want %s", decodeErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestDecodeUnsupportedKind(t *testing.T) {
	_, err := Decode("anything", domain.EncodingKind("morse"), 0)
	var unsupported *domain.UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Decode with unknown kind error = %v, want UnsupportedKindError", err)
	}
}

func TestRot13IsSelfInverse(t *testing.T) {
	inputs := []string{"Hello, World!", "uryyb", "MiXeD CaSe 123", ""}
	for _, s := range inputs {
		once, err := Decode(s, domain.KindRot13, 0)
		if err != nil {
			t.Fatalf("rot13(%q) error = %v", s, err)
		}
		twice, err := Decode(once.DecodedText, domain.KindRot13, 0)
		if err != nil {
			t.Fatalf("rot13(rot13(%q)) error = %v", s, err)
		}
		if twice.DecodedText != s {
			t.Fatalf("rot13 twice over %q = %q, want identity", s, twice.DecodedText)
		}
	}
}

func TestCaesarRoundTrips(t *testing.T) {
	inputs := []string{"Hello, World!", "attack at dawn", "ZYXWvu"}
	for _, shift := range []int{-30, -13, -1, 0, 3, 13, 25, 26, 52, 99} {
		for _, s := range inputs {
			encoded, err := Decode(s, domain.KindCaesar, -shift)
			if err != nil {
				t.Fatalf("caesar(%q, %d) error = %v", s, -shift, err)
			}
			decoded, err := Decode(encoded.DecodedText, domain.KindCaesar, shift)
			if err != nil {
				t.Fatalf("caesar(%q, %d) error = %v", encoded.DecodedText, shift, err)
			}
			if decoded.DecodedText != s {
				t.Fatalf("caesar round trip (shift %d) over %q = %q", shift, s, decoded.DecodedText)
			}
		}
	}
}

func TestDecodeShiftDefaultsAreCallerOwned(t *testing.T) {
	// The engine applies exactly the shift it is given; shift zero leaves
	// caesar text untouched.
	got, err := Decode("Khoor", domain.KindCaesar, 0)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if got.DecodedText != "Khoor" {
		t.Fatalf("Decode with shift 0 = %q, want input unchanged", got.DecodedText)
	}
}

func TestDecodeHexIgnoresWhitespace(t *testing.T) {
	got, err := Decode("48 65 6c\n6c 6f", domain.KindHex, 0)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if got.DecodedText != "Hello" {
		t.Fatalf("Decode = %q, want Hello", got.DecodedText)
	}
}

func TestDecodeURLKeepsLiteralPlus(t *testing.T) {
	got, err := Decode("a+b%20c", domain.KindURL, 0)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if got.DecodedText != "a+b c" {
		t.Fatalf("Decode = %q, want %q", got.DecodedText, "a+b c")
	}
}

func TestDecodeHexHighBytesBecomeCodePoints(t *testing.T) {
	// Each pair maps to the code point with that value, so 0xe9 is U+00E9,
	// not a raw latin-1 byte.
	got, err := Decode("63616:66:65:", domain.KindHex, 0)
	if err == nil {
		t.Fatalf("Decode(%q) = %q, want error for non-hex pair", "63616:66:65:", got.DecodedText)
	}
	out, err := Decode("636166e9", domain.KindHex, 0)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if out.DecodedText != "café" {
		t.Fatalf("Decode = %q, want café", out.DecodedText)
	}
	if out.DecodedLength != 4 {
		t.Fatalf("DecodedLength = %d, want 4 code points", out.DecodedLength)
	}
}
