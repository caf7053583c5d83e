// Package version provides build version information for pathscope.
// Kept separate so cli and main can share it without an import cycle.
package version

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v0.3.0"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"

// String returns the version and build time in the form used by --version.
func String() string {
	return Version + " (" + BuildTime + ")"
}
