package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/docsite/internal/version.Version=0.2.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// IsKnown reports whether v carries a real version rather than the "unknown" sentinel.
func IsKnown(v string) bool {
	return v != "" && !containsUnknown(v)
}
