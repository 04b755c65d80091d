package config

import (
	"strings"

	"github.com/yndnr/tokrand-go/internal/core/domain"
	"github.com/yndnr/tokrand-go/pkg/entropy"
	"github.com/yndnr/tokrand-go/pkg/token"
)

var knownProviders = map[string]bool{
	entropy.NameRuntime:   true,
	entropy.NameGetrandom: true,
	entropy.NameDRBG:      true,
	entropy.NameDevice:    true,
	entropy.NameCryptoAPI: true,
	entropy.NameFallback:  true,
}

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyEntropy(&cfg.Entropy); err != nil {
		return err
	}
	if err := verifyToken(&cfg.Token); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyEntropy(cfg *EntropySection) error {
	for _, name := range cfg.Providers {
		if !knownProviders[strings.ToLower(strings.TrimSpace(name))] {
			return domain.ErrInvalidConfig.WithDetailsf("entropy.providers: unknown provider %q", name)
		}
	}
	if cfg.DevicePath == "" {
		return domain.ErrInvalidConfig.WithDetails("entropy.device_path is required")
	}
	return nil
}

func verifyToken(cfg *TokenSection) error {
	if !token.Supported(cfg.Algorithm) {
		return domain.ErrInvalidConfig.WithDetailsf("token.algorithm: unsupported %q", cfg.Algorithm)
	}
	if _, err := token.ParseEncoding(cfg.Encoding); err != nil {
		return domain.ErrInvalidConfig.WithDetailsf("token.encoding: unsupported %q", cfg.Encoding)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return domain.ErrInvalidConfig.WithDetailsf("log.level: unknown level %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return domain.ErrInvalidConfig.WithDetailsf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}
