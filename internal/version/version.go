package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g. -ldflags "-X github.com/faizmokh/dailylog/internal/version.Version=v0.3.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version line printed by `dailylog version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
