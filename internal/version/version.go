// Package version exposes build metadata.
package version

// Build metadata, set via -ldflags at release time.
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the build was produced from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// GetInfo returns the build metadata.
func GetInfo() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}
