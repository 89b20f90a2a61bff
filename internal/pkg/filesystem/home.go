package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DescryDir returns the per-user descry state directory (~/.descry),
// optionally joined with further path elements.
func DescryDir(elem ...string) string {
	parts := append([]string{UserHomeDir(), ".descry"}, elem...)
	return filepath.Join(parts...)
}
