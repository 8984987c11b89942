package avdb

var (
	// Version is the application version, overridden by build flags.
	Version = "v0.1.0"

	// Build is the build timestamp, set by build flags.
	Build string
)
