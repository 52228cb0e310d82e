package version

// Version is the flowstat release version, overridden at build time via
// -ldflags "-X github.com/livp123/flowstat/internal/version.Version=...".
// Version 是 flowstat 的发布版本，构建时通过 -ldflags 覆盖。
var Version = "dev"
