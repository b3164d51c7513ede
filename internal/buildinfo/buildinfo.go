// Package buildinfo carries release metadata injected via ldflags.
package buildinfo

// These values default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Short returns the version for display, "devel" for local builds.
func Short() string {
	if Version == "" {
		return "devel"
	}
	return Version
}
