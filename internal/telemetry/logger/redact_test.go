package logger

import (
	"log/slog"
	"strings"
	"testing"
)

func TestRedact_TokenValue(t *testing.T) {
	l, buf := newJSON(t, "info")

	tok := strings.Repeat("ab", 64)
	l.Info("token issued", "token", tok)

	got, ok := decode(t, buf)["token"].(string)
	if !ok {
		t.Fatal("Expected token field in log")
	}
	if got == tok {
		t.Fatal("token should be redacted")
	}
	if got != "aba...bab" {
		t.Errorf("token mask = %q, want aba...bab", got)
	}
}

func TestRedact_EntropyBytes(t *testing.T) {
	l, buf := newJSON(t, "info")

	l.Info("buffer", "entropy", []byte{1, 2, 3})

	if got := decode(t, buf)["entropy"]; got != redactedValue {
		t.Errorf("entropy = %v, want %s", got, redactedValue)
	}
}

func TestRedact_Group(t *testing.T) {
	l, buf := newJSON(t, "info")

	l.Info("g", slog.Group("result", "digest", "0123456789abcdef0123"))
	entry := decode(t, buf)
	group, ok := entry["result"].(map[string]any)
	if !ok {
		t.Fatalf("result group missing: %v", entry)
	}
	if group["digest"] != "012...123" {
		t.Errorf("digest = %v", group["digest"])
	}
}

func TestRedact_NormalValues(t *testing.T) {
	l, buf := newJSON(t, "info")

	l.Info("entropy served", "provider", "runtime", "strength", "strong")

	entry := decode(t, buf)
	if entry["provider"] != "runtime" || entry["strength"] != "strong" {
		t.Errorf("non-sensitive values changed: %v", entry)
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", redactedValue},
		{"exactly12chr", redactedValue},
		{"0123456789abcdef", "012...def"},
	}
	for _, tt := range tests {
		if got := MaskValue(tt.in); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := map[string]bool{
		"token":      true,
		"csrf_Token": true,
		"entropy":    true,
		"seed":       true,
		"digest":     true,
		"provider":   false,
		"algorithm":  false,
		"strength":   false,
	}
	for key, want := range tests {
		if got := IsSensitiveKey(key); got != want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", key, got, want)
		}
	}
}
