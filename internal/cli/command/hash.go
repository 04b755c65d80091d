package command

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/pkg/token"
)

// HashCommand returns the hash command.
func HashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Hash a file or stdin with a registered algorithm",
		ArgsUsage: "[FILE|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Hash algorithm",
				Value:   token.DefaultAlgorithm,
			},
		},
		Action: hashAction,
	}
}

func hashAction(c *cli.Context) error {
	h, err := token.New(c.String("algorithm"))
	if err != nil {
		return err
	}

	var r io.Reader = c.App.Reader
	if r == nil {
		r = os.Stdin
	}
	if name := c.Args().First(); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	_, err = fmt.Fprintln(writer(c), hex.EncodeToString(h.Sum(nil)))
	return err
}
