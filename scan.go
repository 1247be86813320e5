package csv2latex

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/errors"
)

// Dimensions is what the measuring pass learns about an input.
type Dimensions struct {
	// Columns is the largest number of fields in a row, at least 1.
	Columns int `json:"columns" yaml:"columns"`

	// MaxCellWidth is the largest number of data bytes in one cell.
	MaxCellWidth int `json:"max_cell_width" yaml:"max_cell_width"`

	// MaxCellDisplayWidth is the largest terminal width of one cell.
	MaxCellDisplayWidth int `json:"max_cell_display_width" yaml:"max_cell_display_width"`

	// Rows counts newline-terminated rows. A final line without a newline
	// is not a row.
	Rows int `json:"rows" yaml:"rows"`
}

// Blocks returns how many tabular environments a render of d opens.
func (d Dimensions) Blocks(cfg Config) int {
	if cfg.Bare || cfg.LongTable || cfg.RowsPerBlock == 0 || d.Rows == 0 {
		return 1
	}
	rows := uint(d.Rows)
	return int((rows-1)/cfg.RowsPerBlock + 1)
}

// Scan reads r to the end and measures it with the separator and quote of
// cfg. Callers rewind r before the next pass.
func Scan(r io.Reader, cfg Config) (Dimensions, error) {
	var (
		d    Dimensions
		lx   = newLexer(cfg.Separator, cfg.Quote, false)
		br   = bufio.NewReader(r)
		cols int
		cell []byte

		// Row maxima are only committed when the row's newline arrives.
		rowWidth, rowDisplay int
	)
	endCell := func() {
		rowWidth = max(rowWidth, len(cell))
		rowDisplay = max(rowDisplay, runewidth.StringWidth(string(cell)))
		cell = cell[:0]
	}
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dimensions{}, errors.Newf("scan input").Wrap(err)
		}
		switch lx.next(c) {
		case classNewline:
			endCell()
			d.Columns = max(d.Columns, cols+1)
			d.MaxCellWidth = max(d.MaxCellWidth, rowWidth)
			d.MaxCellDisplayWidth = max(d.MaxCellDisplayWidth, rowDisplay)
			d.Rows++
			cols, rowWidth, rowDisplay = 0, 0, 0
		case classSeparator:
			endCell()
			cols++
		case classData:
			cell = append(cell, c)
		}
	}
	d.Columns = max(d.Columns, 1)
	cfg.logger().Debugf("scanned %d rows, %d columns, widest cell %d bytes", d.Rows, d.Columns, d.MaxCellWidth)
	return d, nil
}
