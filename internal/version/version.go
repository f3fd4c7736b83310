// Package version exposes build metadata, populated at link time via -ldflags.
package version

import "fmt"

// Set via -ldflags "-X github.com/HerbHall/flowsight/internal/version.Version=..."
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Info returns a human-readable version line for the CLI.
func Info() string {
	return fmt.Sprintf("flowsight %s (commit %s, built %s)", Version, Commit, Date)
}

// Map returns version fields for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
	}
}
