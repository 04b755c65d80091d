package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/tokrand-go/internal/cli/output"
)

// TokenRow is one generated token as printed by the CLI.
type TokenRow struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Token     string `json:"token" yaml:"token"`
}

// TokenCommand returns the token command.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Derive hash-based tokens from fresh entropy",
		Description: "In table mode tokens are printed one per line as they are generated.\n" +
			"With --rate, generation is throttled to that many tokens per second.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Hash algorithm (default from config, whirlpool)",
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "Digest encoding: hex, base64url (default from config)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of tokens",
				Value:   1,
			},
			&cli.Float64Flag{
				Name:    "rate",
				Aliases: []string{"r"},
				Usage:   "Maximum tokens per second (0 = unlimited)",
			},
		},
		Action: tokenAction,
	}
}

func tokenAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	perSecond := c.Float64("rate")
	if perSecond < 0 {
		return fmt.Errorf("--rate must not be negative")
	}

	algorithm := c.String("algorithm")
	if algorithm == "" {
		algorithm = rt.Config.Token.Algorithm
	}
	gen, err := rt.Generator(c.String("encoding"))
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}

	w := writer(c)
	stream := rt.Format == output.FormatTable
	rows := make([]TokenRow, 0, count)
	for i := 0; i < count; i++ {
		if err := limiter.Wait(c.Context); err != nil {
			return err
		}
		tok, err := gen.RandomToken(algorithm)
		if err != nil {
			return err
		}
		if stream {
			fmt.Fprintln(w, tok)
			continue
		}
		rows = append(rows, TokenRow{Algorithm: algorithm, Token: tok})
	}

	if stream {
		return nil
	}
	return rt.Print(w, rows)
}
