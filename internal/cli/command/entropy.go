package command

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/pkg/token"
)

// EntropySample is one raw entropy buffer as printed by the CLI.
type EntropySample struct {
	Provider string `json:"provider" yaml:"provider"`
	Strength string `json:"strength" yaml:"strength"`
	Value    string `json:"value" yaml:"value"`
}

// EntropyCommand returns the entropy command.
func EntropyCommand() *cli.Command {
	return &cli.Command{
		Name:  "entropy",
		Usage: "Print raw 64-byte entropy buffers",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of buffers",
				Value:   1,
			},
			&cli.StringFlag{
				Name:    "encoding",
				Aliases: []string{"e"},
				Usage:   "Byte encoding: hex, base64url",
				Value:   string(token.EncodingHex),
			},
		},
		Action: entropyAction,
	}
}

func entropyAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	enc, err := token.ParseEncoding(c.String("encoding"))
	if err != nil {
		return err
	}

	samples := make([]EntropySample, 0, count)
	for i := 0; i < count; i++ {
		r, err := rt.Entropy()
		if err != nil {
			return err
		}
		samples = append(samples, EntropySample{
			Provider: r.Provider,
			Strength: r.Strength.String(),
			Value:    encodeBytes(enc, r.Bytes),
		})
		clear(r.Bytes)
	}
	return rt.Print(writer(c), samples)
}

func encodeBytes(enc token.Encoding, b []byte) string {
	if enc == token.EncodingBase64URL {
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
