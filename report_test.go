package csv2latex_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/csv2latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() csv2latex.Report {
	cfg := csv2latex.DefaultConfig()
	cfg.RowsPerBlock = 1
	return csv2latex.NewReport("stats.csv", cfg, csv2latex.Dimensions{
		Columns:             3,
		MaxCellWidth:        6,
		MaxCellDisplayWidth: 4,
		Rows:                2,
	})
}

func TestParseReportFormat(t *testing.T) {
	t.Parallel()
	for _, f := range csv2latex.ReportFormats() {
		got, err := csv2latex.ParseReportFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := csv2latex.ParseReportFormat("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, csv2latex.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestReportFormatsIsACopy(t *testing.T) {
	t.Parallel()
	formats := csv2latex.ReportFormats()
	formats[0] = "mutated"
	assert.Equal(t, csv2latex.ReportJSON, csv2latex.ReportFormats()[0])
}

func TestNewReport(t *testing.T) {
	t.Parallel()
	rep := sampleReport()
	assert.Equal(t, ",", rep.Separator)
	assert.Equal(t, "none", rep.Quote)
	assert.Equal(t, 2, rep.Blocks)

	cfg := csv2latex.DefaultConfig()
	cfg.Quote = '"'
	cfg.LongTable = true
	rep = csv2latex.NewReport("-", cfg, csv2latex.Dimensions{Columns: 1, Rows: 90})
	assert.Equal(t, `"`, rep.Quote)
	assert.Equal(t, 1, rep.Blocks)
}

func TestWriteReport(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format   csv2latex.ReportFormat
		contains []string
	}{
		"json": {
			format:   csv2latex.ReportJSON,
			contains: []string{`"columns": 3`, `"source": "stats.csv"`, `"blocks": 2`},
		},
		"yaml": {
			format:   csv2latex.ReportYAML,
			contains: []string{"rows: 2", "source: stats.csv", "  columns: 3"},
		},
		"table": {
			format:   csv2latex.ReportTable,
			contains: []string{"| columns ", "| max cell display width |", "stats.csv |"},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, csv2latex.WriteReport(&buf, tt.format, sampleReport()))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteReportTableBorders(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, csv2latex.WriteReport(&buf, csv2latex.ReportTable, sampleReport()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Equal(t, lines[0], lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		assert.Len(t, line, len(lines[0]))
	}
}

func TestWriteReportErrors(t *testing.T) {
	t.Parallel()
	err := csv2latex.WriteReport(&bytes.Buffer{}, "xml", sampleReport())
	assert.ErrorIs(t, err, csv2latex.ErrUnsupportedFormat)

	for _, f := range csv2latex.ReportFormats() {
		err := csv2latex.WriteReport(&errWriter{}, f, sampleReport())
		assert.Error(t, err, f.String())
	}
}
