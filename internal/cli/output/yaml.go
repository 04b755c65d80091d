package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes one YAML document. Indent defaults to 2 spaces.
type YAMLFormatter struct {
	Indent int
}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	indent := f.Indent
	if indent <= 0 {
		indent = 2
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
