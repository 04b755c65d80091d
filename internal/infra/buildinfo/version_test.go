package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}
	if info.BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		flags    Info
		fallback Info
		want     Info
	}{
		{
			name:     "ldflags win",
			flags:    Info{Version: "v1.2.3", Commit: "abc", BuildTime: "2026-01-01"},
			fallback: Info{Version: "v0.0.1", Commit: "def", BuildTime: "2025-01-01"},
			want:     Info{Version: "v1.2.3", Commit: "abc", BuildTime: "2026-01-01"},
		},
		{
			name:     "embedded fills defaults",
			flags:    Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"},
			fallback: Info{Version: "v0.3.0", Commit: "0123456789abcdef0123", BuildTime: "2026-02-03T04:05:06Z"},
			want:     Info{Version: "v0.3.0", Commit: "0123456789ab", BuildTime: "2026-02-03T04:05:06Z"},
		},
		{
			name:  "nothing embedded",
			flags: Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"},
			want:  Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.flags, tt.fallback)
			if got.Version != tt.want.Version || got.Commit != tt.want.Commit || got.BuildTime != tt.want.BuildTime {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, Get().Version) {
		t.Errorf("String() = %q, missing version", s)
	}
	if !strings.Contains(s, "built at") {
		t.Errorf("String() = %q, missing build time", s)
	}
}
