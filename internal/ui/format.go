package ui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/nhqb1010/qb-cli/internal/app"
)

// Format selects how records are written.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatTable, FormatCSV, FormatYAML}

// ErrUnsupportedFormat indicates an unknown --output value.
var ErrUnsupportedFormat = app.ErrUnsupportedFormat

// ParseFormat validates s case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}
	return "", fmt.Errorf("%w %q, expected one of: %s", ErrUnsupportedFormat, s, strings.Join(names, ", "))
}

// Tabular is a record that can be shown as a table or CSV row.
type Tabular interface {
	Header() []string
	Row() []string
}

// Render writes items to w in format f. JSON and YAML marshal the records
// themselves; table and CSV use Header and Row. The table has a leading
// 1-based index column.
func Render[T Tabular](w io.Writer, f Format, items []T) error {
	if items == nil {
		items = []T{}
	}

	switch f {
	case FormatJSON:
		return writeJSON(w, items)
	case FormatYAML:
		return writeYAML(w, items)
	case FormatCSV:
		return writeCSV(w, items)
	case FormatTable:
		return writeTable(w, items)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing json output: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing yaml output: %w", err)
	}
	return enc.Close()
}

func writeCSV[T Tabular](w io.Writer, items []T) error {
	var zero T
	cw := csv.NewWriter(w)

	if err := cw.Write(zero.Header()); err != nil {
		return fmt.Errorf("error writing csv output: %w", err)
	}
	for _, item := range items {
		if err := cw.Write(item.Row()); err != nil {
			return fmt.Errorf("error writing csv output: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeTable[T Tabular](w io.Writer, items []T) error {
	var zero T
	headers := append([]string{"#"}, zero.Header()...)

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, append([]string{strconv.Itoa(i + 1)}, item.Row()...))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
