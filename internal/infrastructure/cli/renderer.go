package cli

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"

	"github.com/descry-dev/descry/internal/domain"
)

// RenderOutcome prints a decode result in a friendly, ASCII-only format.
// When out is not a terminal only the decoded text is written, so the
// command stays pipe-friendly.
func RenderOutcome(out io.Writer, outcome domain.DecodeOutcome) {
	if !isTerminal(out) {
		fmt.Fprintln(out, outcome.DecodedText)
		return
	}

	fmt.Fprintf(out, "Encoding: %s\n", outcome.ResolvedKind)
	fmt.Fprintf(out, "Length:   %d -> %d code points\n", outcome.OriginalLength, outcome.DecodedLength)
	fmt.Fprintln(out)
	fmt.Fprintln(out, outcome.DecodedText)
}

// isTerminal inspects the writer itself, not os.Stdout, so redirected
// writers (and tests) get the plain rendering.
func isTerminal(out io.Writer) bool {
	type fdWriter interface {
		Fd() uintptr
	}
	f, ok := out.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
