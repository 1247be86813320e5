package csv2latex

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for an unknown report format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ReportFormat is an output format for a scan report.
type ReportFormat string

const (
	ReportJSON  ReportFormat = "json"
	ReportYAML  ReportFormat = "yaml"
	ReportTable ReportFormat = "table"
)

var reportFormats = []ReportFormat{ReportJSON, ReportYAML, ReportTable}

// String returns the format name.
func (f ReportFormat) String() string { return string(f) }

// ReportFormats returns all supported report format names.
func ReportFormats() []ReportFormat {
	out := make([]ReportFormat, len(reportFormats))
	copy(out, reportFormats)
	return out
}

// ParseReportFormat parses a report format name.
func ParseReportFormat(s string) (ReportFormat, error) {
	for _, f := range reportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Report describes what a conversion measured and resolved.
type Report struct {
	Source     string     `json:"source" yaml:"source"`
	Separator  string     `json:"separator" yaml:"separator"`
	Quote      string     `json:"quote" yaml:"quote"`
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	Blocks     int        `json:"blocks" yaml:"blocks"`
}

// NewReport builds the report for a measured input.
func NewReport(source string, cfg Config, dims Dimensions) Report {
	quote := "none"
	if cfg.Quote != 0 {
		quote = string(cfg.Quote)
	}
	return Report{
		Source:     source,
		Separator:  string(cfg.Separator),
		Quote:      quote,
		Dimensions: dims,
		Blocks:     dims.Blocks(cfg),
	}
}

// WriteReport writes rep to w in format f.
func WriteReport(w io.Writer, f ReportFormat, rep Report) error {
	switch f {
	case ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case ReportTable:
		return writeReportTable(w, rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func (rep Report) pairs() [][2]string {
	return [][2]string{
		{"source", rep.Source},
		{"separator", strconv.Quote(rep.Separator)},
		{"quote", rep.Quote},
		{"columns", strconv.Itoa(rep.Dimensions.Columns)},
		{"rows", strconv.Itoa(rep.Dimensions.Rows)},
		{"max cell width", strconv.Itoa(rep.Dimensions.MaxCellWidth)},
		{"max cell display width", strconv.Itoa(rep.Dimensions.MaxCellDisplayWidth)},
		{"blocks", strconv.Itoa(rep.Blocks)},
	}
}

// writeReportTable draws the report as a two-column ASCII table.
func writeReportTable(w io.Writer, rep Report) error {
	pairs := rep.pairs()
	widths := []int{0, 0}
	for _, p := range pairs {
		for i, cell := range p {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "| %s | %s |\n", alignCell(p[0], widths[0], AlignLeft), alignCell(p[1], widths[1], AlignRight)); err != nil {
			return err
		}
	}
	return drawHLine(w, widths)
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
