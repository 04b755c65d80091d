package config

// Config is the root configuration for tokrand.
type Config struct {
	Entropy EntropySection `koanf:"entropy" json:"entropy" yaml:"entropy"`
	Token   TokenSection   `koanf:"token" json:"token" yaml:"token"`
	Log     LogSection     `koanf:"log" json:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" json:"metrics" yaml:"metrics"`
}

// EntropySection configures the provider chain.
type EntropySection struct {
	// Providers lists provider names in priority order.
	// Empty means the full default chain.
	Providers []string `koanf:"providers" json:"providers" yaml:"providers"`

	// DevicePath is the random device read by the device provider.
	DevicePath string `koanf:"device_path" json:"device_path" yaml:"device_path"`

	// AllowedPaths restricts filesystem access for the device provider.
	// Empty means unrestricted.
	AllowedPaths []string `koanf:"allowed_paths" json:"allowed_paths" yaml:"allowed_paths"`

	// Strict refuses weak providers.
	Strict bool `koanf:"strict" json:"strict" yaml:"strict"`
}

// TokenSection configures token derivation.
type TokenSection struct {
	Algorithm string `koanf:"algorithm" json:"algorithm" yaml:"algorithm"`
	Encoding  string `koanf:"encoding" json:"encoding" yaml:"encoding"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// MetricsSection configures metrics output.
type MetricsSection struct {
	// Enabled prints Prometheus text exposition to stderr on exit.
	Enabled bool `koanf:"enabled" json:"enabled" yaml:"enabled"`
}
