// Package version reports the build version of netscen-cfg.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/netscen/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/netscen/internal/version.Commit=abc123"
//
// If not set, they are populated from the VCS stamp in the build info,
// or fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
	// GoVersion is the toolchain the binary was built with
	GoVersion = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// applyBuildInfo fills the unset variables from the build settings.
func applyBuildInfo(info *debug.BuildInfo) {
	if GoVersion == "" {
		GoVersion = info.GoVersion
	}
	// A tagged module build carries its own version.
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified, vcsTime string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// String is the line printed by the version command.
func String(app string) string {
	s := fmt.Sprintf("%s %s", app, Full())
	if GoVersion != "" {
		s += ", " + GoVersion
	}
	return s
}
