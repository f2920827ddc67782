package buildinfo

// Build metadata, overridden via -ldflags "-X" at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
