package entropy

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Platform describes the host facts the provider chain depends on.
type Platform struct {
	// GOOS is the operating system, as in runtime.GOOS.
	GOOS string

	// PathAllowed reports whether filesystem access to path is permitted.
	// A nil policy allows every path.
	PathAllowed func(path string) bool
}

// HostPlatform returns the Platform of the running process with no path
// restriction.
func HostPlatform() Platform {
	return Platform{GOOS: runtime.GOOS}
}

// IsWindows reports whether the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.GOOS == "windows"
}

// Allows applies the path policy.
func (p Platform) Allows(path string) bool {
	if p.PathAllowed == nil {
		return true
	}
	return p.PathAllowed(path)
}

// RestrictPaths returns a policy that only allows paths inside one of dirs.
// With no dirs it returns nil, which allows everything.
func RestrictPaths(dirs ...string) func(path string) bool {
	var roots []string
	for _, d := range dirs {
		if d = strings.TrimSpace(d); d != "" {
			roots = append(roots, filepath.Clean(d))
		}
	}
	if len(roots) == 0 {
		return nil
	}

	return func(path string) bool {
		path = filepath.Clean(path)
		for _, root := range roots {
			if path == root {
				return true
			}
			prefix := root
			if !strings.HasSuffix(prefix, string(filepath.Separator)) {
				prefix += string(filepath.Separator)
			}
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
		return false
	}
}
