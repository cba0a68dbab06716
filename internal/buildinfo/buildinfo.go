// Package buildinfo carries the engine build identifier shown in the window
// title and the startup log line.
package buildinfo

// Version is the release tag, set with -ldflags "-X engine/internal/buildinfo.Version=...".
var Version = "dev"

// Commit is the source revision, set with -ldflags.
var Commit = "unknown"

// Date is the build time, set with -ldflags.
var Date = "unknown"

// Short returns the release tag, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
