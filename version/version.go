// Package version exposes the build version embedded at compile time.
package version

import (
	"runtime/debug"
)

// Version is overridden at build time with
// -ldflags "-X github.com/kbukum/inventario/version.Version=v1.2.3".
var Version = "dev"

// Short returns the version, appending the VCS revision when the binary
// was built from a checkout.
func Short() string {
	commit := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
				if len(commit) > 7 {
					commit = commit[:7]
				}
			}
		}
	}
	if commit == "" {
		return Version
	}
	return Version + "-" + commit
}
