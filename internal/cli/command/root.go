package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/internal/cli/config"
	"github.com/yndnr/tokrand-go/internal/cli/output"
	"github.com/yndnr/tokrand-go/internal/infra/buildinfo"
)

const runtimeKey = "runtime"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "tokrand",
		Usage:   "Generate random bytes and hash-based tokens",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			EntropyCommand(),
			TokenCommand(),
			HashCommand(),
			AlgorithmsCommand(),
			ProvidersCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
		After:  flushMetrics,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.tokrand/config.yaml if present)",
			EnvVars: []string{"TOKRAND_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log provider decisions at debug level",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Refuse weak entropy providers",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Print Prometheus metrics to stderr on exit",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config  string
	Output  string
	Verbose bool
	Strict  bool
	Metrics bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:  c.String("config"),
		Output:  c.String("output"),
		Verbose: c.Bool("verbose"),
		Strict:  c.Bool("strict"),
		Metrics: c.Bool("metrics"),
	}
}

// overrides maps explicitly set global flags onto config keys.
func (f *GlobalFlags) overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	if f.Verbose {
		m["log.level"] = "debug"
	}
	if c.IsSet("strict") {
		m["entropy.strict"] = f.Strict
	}
	if f.Metrics {
		m["metrics.enabled"] = true
	}
	return m
}

func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.Config, flags.overrides(c))
	if err != nil {
		return err
	}

	rt, err := NewRuntime(cfg, format, errWriter(c))
	if err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = rt
	return nil
}

func flushMetrics(c *cli.Context) error {
	rt := GetRuntime(c)
	if rt == nil || rt.Metrics == nil {
		return nil
	}
	return rt.Metrics.WriteText(errWriter(c))
}

// GetRuntime retrieves the runtime built by the Before hook.
func GetRuntime(c *cli.Context) *Runtime {
	if c.App == nil {
		return nil
	}
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt
	}
	return nil
}

func mustRuntime(c *cli.Context) (*Runtime, error) {
	rt := GetRuntime(c)
	if rt == nil {
		return nil, fmt.Errorf("runtime not initialized")
	}
	return rt, nil
}

func writer(c *cli.Context) io.Writer {
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func errWriter(c *cli.Context) io.Writer {
	if c.App != nil && c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
