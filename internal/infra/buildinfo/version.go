package buildinfo

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Build-time variables (set via ldflags).
var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Info contains build information.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

var embedded = sync.OnceValue(func() Info {
	info := Info{}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		}
	}
	return info
})

// Get returns the build information. ldflags values win over embedded ones.
func Get() Info {
	return resolve(Info{Version: Version, Commit: Commit, BuildTime: BuildTime}, embedded())
}

func resolve(flags, fallback Info) Info {
	info := flags
	if info.Version == "dev" && fallback.Version != "" {
		info.Version = fallback.Version
	}
	if info.Commit == "unknown" && fallback.Commit != "" {
		info.Commit = shortCommit(fallback.Commit)
	}
	if info.BuildTime == "unknown" && fallback.BuildTime != "" {
		info.BuildTime = fallback.BuildTime
	}
	info.GoVersion = runtime.Version()
	info.Platform = runtime.GOOS + "/" + runtime.GOARCH
	return info
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

// String returns a formatted version string.
func String() string {
	info := Get()
	return info.Version + " (" + info.Commit + ") built at " + info.BuildTime
}
