package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokrand-go/pkg/token"
)

// AlgorithmInfo describes one registered hash algorithm.
type AlgorithmInfo struct {
	Name      string `json:"name" yaml:"name"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
	HexLength int    `json:"hex_length" yaml:"hex_length"`
	Default   bool   `json:"default" yaml:"default"`
}

// AlgorithmsCommand returns the algorithms command.
func AlgorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:    "algorithms",
		Aliases: []string{"algos"},
		Usage:   "List supported hash algorithms",
		Action:  algorithmsAction,
	}
}

// ListAlgorithms returns every registered algorithm, sorted by name.
func ListAlgorithms() []AlgorithmInfo {
	names := token.Algorithms()
	infos := make([]AlgorithmInfo, 0, len(names))
	for _, name := range names {
		size, err := token.DigestSize(name)
		if err != nil {
			continue
		}
		infos = append(infos, AlgorithmInfo{
			Name:      name,
			Bytes:     size,
			HexLength: size * 2,
			Default:   name == token.DefaultAlgorithm,
		})
	}
	return infos
}

func algorithmsAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}
	return rt.Print(writer(c), ListAlgorithms())
}
