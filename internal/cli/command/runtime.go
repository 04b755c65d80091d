package command

import (
	"io"

	"github.com/yndnr/tokrand-go/internal/cli/config"
	"github.com/yndnr/tokrand-go/internal/cli/output"
	"github.com/yndnr/tokrand-go/internal/telemetry/logger"
	"github.com/yndnr/tokrand-go/internal/telemetry/metric"
	"github.com/yndnr/tokrand-go/pkg/entropy"
	"github.com/yndnr/tokrand-go/pkg/token"
)

// Runtime holds the objects shared by all commands of one invocation.
type Runtime struct {
	Config  *config.Config
	Format  output.Format
	Logger  logger.Logger
	Metrics *metric.Registry // nil unless metrics are enabled
	Source  *entropy.Source
}

// NewRuntime builds the logger, metrics and entropy Source described by cfg.
// Logs go to errw.
func NewRuntime(cfg *config.Config, format output.Format, errw io.Writer) (*Runtime, error) {
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errw,
	})
	logger.SetDefault(log)

	rt := &Runtime{Config: cfg, Format: format, Logger: log}

	observers := entropy.Observers{logger.NewEntropyObserver(log)}
	if cfg.Metrics.Enabled {
		rt.Metrics = metric.NewRegistry()
		observers = append(observers, rt.Metrics)
	}

	providers, err := BuildProviders(cfg.Entropy, entropy.HostPlatform())
	if err != nil {
		return nil, err
	}
	rt.Source = entropy.New(
		entropy.WithProviders(providers...),
		entropy.WithObserver(observers),
	)

	log.Debug("entropy chain ready", "providers", providerNames(providers), "strict", cfg.Entropy.Strict)
	return rt, nil
}

// BuildProviders turns the entropy config section into a provider chain
// for platform.
func BuildProviders(sec config.EntropySection, platform entropy.Platform) ([]entropy.Provider, error) {
	if policy := entropy.RestrictPaths(sec.AllowedPaths...); policy != nil {
		platform.PathAllowed = policy
	}

	all := entropy.DefaultProviders(platform)
	for i, p := range all {
		if p.Name() == entropy.NameDevice {
			all[i] = entropy.NewDeviceProvider(platform, sec.DevicePath, nil)
		}
	}

	if len(sec.Providers) == 0 {
		return all, nil
	}
	return entropy.SelectProviders(all, sec.Providers...)
}

// Generator returns a token Generator over the runtime Source.
// An empty encoding means the configured one.
func (rt *Runtime) Generator(encoding string) (*token.Generator, error) {
	if encoding == "" {
		encoding = rt.Config.Token.Encoding
	}
	enc, err := token.ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}

	opts := []token.Option{
		token.WithEncoding(enc),
		token.WithStrict(rt.Config.Entropy.Strict),
	}
	if rt.Metrics != nil {
		opts = append(opts, token.WithObserver(rt.Metrics))
	}
	return token.NewGenerator(rt.Source, opts...), nil
}

// Entropy draws one buffer, honoring strict mode.
func (rt *Runtime) Entropy() (entropy.Result, error) {
	if rt.Config.Entropy.Strict {
		return rt.Source.GenerateStrong()
	}
	return rt.Source.Generate(), nil
}

// Print renders data in the runtime output format.
func (rt *Runtime) Print(w io.Writer, data any) error {
	return output.NewFormatter(rt.Format).Format(w, data)
}

func providerNames(providers []entropy.Provider) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	return names
}
