// Package version exposes build metadata for the debloater binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/debloater/internal/version.Version=v0.4.0 \
//	                   -X github.com/muurk/debloater/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build metadata shown in the About screen and `debloater version`.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Dirty     bool
}

// Get resolves build metadata, filling gaps from the embedded VCS settings.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortHash(s.Value)
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// String formats the metadata as "v0.4.0 (commit: abc1234)".
func (i Info) String() string {
	commit := i.Commit
	if i.Dirty && !strings.HasSuffix(commit, "-dirty") {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", i.Version, commit)
}

// Full returns the full version string including commit
func Full() string {
	return Get().String()
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
