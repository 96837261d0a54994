package version

// Version is set at build time via -ldflags "-X .../internal/version.Version=...".
// Version 在构建时通过 -ldflags 注入。
var Version = "dev"

// Commit and BuildDate are optional build metadata.
var (
	Commit    = ""
	BuildDate = ""
)
