// Package version provides build information for the codedump CLI.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, for example:
// go build -ldflags "-X 'codedump/pkg/version.Version=1.2.3' -X 'codedump/pkg/version.Commit=abcdefg' -X 'codedump/pkg/version.BuildTime=2024-04-27T15:04:05Z'"
var (
	Version   = "dev"     // Release version; "dev" for local builds
	Commit    = "none"    // Git commit hash the binary was built from
	BuildTime = "unknown" // RFC 3339 build timestamp
)

// Info contains build and runtime version details.
type Info struct {
	Version   string // Release version, or "dev"
	GitCommit string // Git commit hash
	BuildTime string // Build timestamp
	GoVersion string // Go toolchain the binary was compiled with
	Platform  string // GOOS/GOARCH
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// IsDev reports whether this is an unreleased build. Dev builds log with
// zap's development config.
func (i Info) IsDev() bool {
	return i.Version == "dev"
}

// String formats the information on one line, e.g.
// codedump version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"codedump version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
