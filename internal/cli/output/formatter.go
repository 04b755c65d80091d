package output

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Format names an output encoding selected with --output.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat parses a format name, case-insensitively. Empty means table.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTable, nil
	}
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
	return f, nil
}

// Formatter writes data to w in one encoding.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format; unknown values get a table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{Indent: 2}
	default:
		return &TableFormatter{}
	}
}
