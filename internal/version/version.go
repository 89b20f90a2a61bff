// Package version carries build metadata injected via -ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
