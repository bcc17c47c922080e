// Package buildinfo carries version metadata injected at build time.
package buildinfo

// These are overridden via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
