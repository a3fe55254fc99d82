// Package version reports the build identity of the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns the version alone. Binaries built with go install carry the
// module version in their build info, which is used when ldflags were not set.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("eslintgen %s (%s, %s)", Short(), Commit, BuildDate)
}
