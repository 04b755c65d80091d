package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned text table.
//
// Supported inputs: *Table, slices of structs (one row per element,
// headers from json tags) and single structs (field/value rows). Anything
// else is printed with %v.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch t := data.(type) {
	case *Table:
		return t.render(w, f.NoHeaders)
	case Table:
		return t.render(w, f.NoHeaders)
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Slice && elemKind(v.Type()) == reflect.Struct:
		return sliceToTable(v).render(w, f.NoHeaders)
	case v.Kind() == reflect.Struct:
		return structToTable(v).render(w, f.NoHeaders)
	default:
		_, err := fmt.Fprintln(w, data)
		return err
	}
}

func elemKind(t reflect.Type) reflect.Kind {
	e := t.Elem()
	if e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	return e.Kind()
}

func sliceToTable(v reflect.Value) *Table {
	typ := v.Type().Elem()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	table := &Table{}
	var fields []int
	for i := 0; i < typ.NumField(); i++ {
		name, ok := columnName(typ.Field(i))
		if !ok {
			continue
		}
		table.Headers = append(table.Headers, strings.ToUpper(name))
		fields = append(fields, i)
	}

	for i := 0; i < v.Len(); i++ {
		elem := reflect.Indirect(v.Index(i))
		row := make([]string, 0, len(fields))
		for _, idx := range fields {
			row = append(row, formatValue(elem.Field(idx)))
		}
		table.AddRow(row...)
	}
	return table
}

func structToTable(v reflect.Value) *Table {
	table := &Table{Headers: []string{"FIELD", "VALUE"}}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		name, ok := columnName(typ.Field(i))
		if !ok {
			continue
		}
		table.AddRow(name, formatValue(v.Field(i)))
	}
	return table
}

// columnName returns the json name of an exported field, or false if the
// field is unexported or tagged "-".
func columnName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return field.Name, true
	default:
		return name, true
	}
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "-"
	}
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func (t *Table) render(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
