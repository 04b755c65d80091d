package config

import (
	"github.com/yndnr/tokrand-go/pkg/entropy"
	"github.com/yndnr/tokrand-go/pkg/token"
)

// Default configuration values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultEncoding  = "hex"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Entropy: EntropySection{
			DevicePath: entropy.DefaultDevicePath,
		},
		Token: TokenSection{
			Algorithm: token.DefaultAlgorithm,
			Encoding:  DefaultEncoding,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
