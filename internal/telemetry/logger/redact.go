package logger

import (
	"log/slog"
	"strings"
)

// Key substrings whose values are redacted.
var sensitiveKeyPatterns = []string{
	"token",
	"entropy",
	"digest",
	"secret",
	"seed",
	"password",
}

const redactedValue = "***REDACTED***"

// redactSensitive masks string and byte values stored under sensitive keys.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}

	if !IsSensitiveKey(a.Key) {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, MaskValue(a.Value.String()))
	case slog.KindAny:
		if b, ok := a.Value.Any().([]byte); ok && len(b) > 0 {
			return slog.String(a.Key, redactedValue)
		}
	}
	return a
}

// MaskValue keeps the first and last 3 characters of long values and
// fully redacts short ones. Empty stays empty.
func MaskValue(value string) string {
	switch {
	case value == "":
		return ""
	case len(value) <= 12:
		return redactedValue
	default:
		return value[:3] + "..." + value[len(value)-3:]
	}
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
