package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printer renders command output as a table or as JSON/YAML documents.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &printer{w: w, format: format}, nil
	case "":
		return &printer{w: w, format: formatTable}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, yaml)", format)
	}
}

// render writes v as a document, or the table built by tbl in table mode.
func (p *printer) render(v any, tbl func() *table.Table) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		_, err := fmt.Fprintln(p.w, tbl().String())
		return err
	}
}

type messageDoc struct {
	Message string `json:"message" yaml:"message"`
}

// message prints a backend confirmation such as "Reservation successful.".
func (p *printer) message(msg string) error {
	if p.format != formatTable {
		return p.render(messageDoc{Message: msg}, nil)
	}
	_, err := fmt.Fprintln(p.w, successStyle.Render(msg))
	return err
}

// warn prints a non-fatal notice. Document formats skip it.
func (p *printer) warn(msg string) {
	if p.format == formatTable {
		fmt.Fprintln(p.w, warnStyle.Render(msg))
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
