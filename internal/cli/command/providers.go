package command

import (
	"github.com/urfave/cli/v2"
)

// ProvidersCommand returns the providers command.
func ProvidersCommand() *cli.Command {
	return &cli.Command{
		Name:   "providers",
		Usage:  "Probe the configured entropy providers on this host",
		Action: providersAction,
	}
}

func providersAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}
	return rt.Print(writer(c), rt.Source.Probe())
}
