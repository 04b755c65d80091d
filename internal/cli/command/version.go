package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/internal/cli/output"
	"github.com/yndnr/tokrand-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionAction,
	}
}

func versionAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}
	if rt.Format == output.FormatTable {
		_, err := fmt.Fprintf(writer(c), "tokrand %s\n", buildinfo.String())
		return err
	}
	return rt.Print(writer(c), buildinfo.Get())
}
