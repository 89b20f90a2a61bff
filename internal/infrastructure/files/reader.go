// Package files validates and reads files for the decode-file operation.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/ports"
)

// RejectError reports a file refused before any decoding ran: disallowed
// extension, oversize content, or bytes that are not UTF-8 text.
type RejectError struct {
	Path   string
	Reason string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("file %s rejected: %s", e.Path, e.Reason)
}

// Reader is the guarded file intake. Limits come from configuration with the
// documented defaults (.txt/.log/.dat, 10 MiB).
type Reader struct {
	maxSize    int64
	extensions []string
}

// NewReader builds a Reader bounded by cfg.
func NewReader(cfg domain.Config) *Reader {
	return &Reader{
		maxSize:    cfg.ResolvedMaxFileSize(),
		extensions: cfg.ResolvedAllowedExtensions(),
	}
}

// Read implements ports.FileIntake: extension check, size check, then a full
// read with UTF-8 validation. Checks run before the read so an oversize file
// is never pulled into memory.
func (r *Reader) Read(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !r.allowed(ext) {
		return "", &RejectError{
			Path:   path,
			Reason: fmt.Sprintf("extension %q not in %s", ext, strings.Join(r.extensions, ", ")),
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > r.maxSize {
		return "", &RejectError{
			Path: path,
			Reason: fmt.Sprintf("size %s exceeds the %s limit",
				humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(r.maxSize))),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &RejectError{Path: path, Reason: "content is not valid UTF-8 text"}
	}
	return string(data), nil
}

func (r *Reader) allowed(ext string) bool {
	for _, candidate := range r.extensions {
		if strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}

var _ ports.FileIntake = (*Reader)(nil)
