package version

// Set at build time through -ldflags "-X github.com/Norgate-AV/scb/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)
