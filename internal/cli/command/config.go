package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/internal/cli/config"
	"github.com/yndnr/tokrand-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "FILE",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	// Nested sections do not fit a table.
	format := rt.Format
	if format == output.FormatTable {
		format = output.FormatYAML
	}
	return output.NewFormatter(format).Format(writer(c), rt.Config)
}

func configValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("config file path required")
	}

	if _, err := config.Load(path, nil); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer(c), "%s: OK\n", path)
	return err
}
