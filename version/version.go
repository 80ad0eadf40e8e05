package version

var (
	// Version is the version of the build, set by the build system.
	Version = "1.0.0"

	// GitHash is the git commit hash of the build, set by the build system.
	GitHash = ""

	// Timestamp is the build time, set by the build system.
	Timestamp = ""
)
