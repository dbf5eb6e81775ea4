// Package version holds the application version and build metadata.
package version

// Version is the application version shown by the Version view and the
// JSON version endpoint. It is a literal, not derived from the build.
const Version = "0.0.1"

// Set at build time with -ldflags "-X github.com/arco/demo/internal/version.Commit=...".
var (
	Commit    = "dev"
	BuildTime = "unknown"
)
