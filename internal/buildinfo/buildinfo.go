// Package buildinfo holds the release metadata stamped into calpick
// binaries at link time.
package buildinfo

// Set via -ldflags by the release pipeline; empty in local dev builds,
// where the version command falls back to debug.ReadBuildInfo.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
