package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/hearthkeep/hearthkeep/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/hearthkeep/hearthkeep/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/hearthkeep/hearthkeep/internal/version.Date={{.Date}}
)
