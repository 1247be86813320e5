package csv2latex

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/errors"
)

const (
	colSep   = '&'
	rowEnd   = `\\` + "\n"
	hline    = `\hline` + "\n"
	endHead  = `\endhead` + "\n"
	colorRow = `\colorrow `
)

// Render writes the rows of r as tabular body markup to w. dims must come
// from a Scan of the same input with the same cfg.
func Render(w io.Writer, r io.Reader, cfg Config, dims Dimensions) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	if err := render(out, r, &cfg, dims); err != nil {
		return err
	}
	return out.Flush()
}

// renderer is the emitting pass. Bytes of the current row are collected in
// row and only written once the row's newline is read.
type renderer struct {
	cfg  *Config
	dims Dimensions
	out  *bufio.Writer

	row       strings.Builder
	cols      int  // columns left in the current row
	blockLeft uint // rows left in the current block
	rowsLeft  int  // rows left in the input
	firstRow  bool

	header   string // markup of the first row
	captured bool

	err error // first write error
}

func render(out *bufio.Writer, r io.Reader, cfg *Config, dims Dimensions) error {
	rd := &renderer{
		cfg:      cfg,
		dims:     dims,
		out:      out,
		cols:     dims.Columns,
		rowsLeft: dims.Rows,
		firstRow: true,
	}
	rd.blockLeft = rd.blockSize()

	lx := newLexer(cfg.Separator, cfg.Quote, true)
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Newf("render input").Wrap(err)
		}
		switch lx.next(c) {
		case classNewline:
			if err := rd.endRow(); err != nil {
				return err
			}
		case classSeparator:
			rd.row.WriteByte(colSep)
			rd.cols--
		case classData:
			rd.data(c)
		}
	}
	if rd.row.Len() > 0 {
		cfg.logger().Debugf("dropped unterminated last line (%d bytes of markup)", rd.row.Len())
	}
	return nil
}

// blockSize is the row limit of one block; zero rows per block is no limit.
func (rd *renderer) blockSize() uint {
	if rd.cfg.RowsPerBlock == 0 {
		return math.MaxUint
	}
	return rd.cfg.RowsPerBlock
}

func (rd *renderer) data(c byte) {
	if rd.cfg.Escape {
		if esc, ok := rd.cfg.Escapes.Lookup(c); ok {
			rd.row.WriteString(esc)
			return
		}
	}
	rd.row.WriteByte(c)
}

// endRow writes the buffered row and whatever block markup follows it. It
// returns the first error the output reported.
func (rd *renderer) endRow() error {
	for ; rd.cols > 1; rd.cols-- {
		rd.row.WriteByte(colSep)
	}
	markup := rd.row.String()
	rd.row.Reset()

	rd.writeRow(markup)
	if rd.firstRow && rd.cfg.RepeatHeader {
		rd.header = markup
		rd.captured = true
		if rd.cfg.LongTable {
			rd.write(endHead)
		}
	}
	rd.firstRow = false
	rd.cols = rd.dims.Columns
	rd.blockLeft--
	rd.rowsLeft--

	if rd.cfg.RowShade != "" && rd.blockLeft%2 == 1 && rd.rowsLeft > 0 {
		rd.write(colorRow)
	}
	if rd.blockLeft == 0 && rd.rowsLeft > 0 && !rd.cfg.LongTable && !rd.cfg.Bare {
		rd.breakBlock()
	}
	return rd.err
}

func (rd *renderer) write(s string) {
	if rd.err != nil {
		return
	}
	_, rd.err = rd.out.WriteString(s)
}

// writeRow writes one row with its terminator and border.
func (rd *renderer) writeRow(markup string) {
	rd.write(markup)
	rd.write(rowEnd)
	if rd.cfg.HorizontalBorders {
		rd.write(hline)
	}
}

// breakBlock closes the full tabular and opens the next one.
func (rd *renderer) breakBlock() {
	rd.cfg.logger().Debugf("block full, %d rows left", rd.rowsLeft)
	rd.write(`\end{tabular}` + "\n")
	rd.write(`\newline` + "\n")
	rd.write(beginLine("tabular", rd.cfg, rd.dims.Columns))
	if rd.cfg.HorizontalBorders {
		rd.write(hline)
	}
	if rd.captured {
		rd.writeRow(rd.header)
	}
	rd.blockLeft = rd.blockSize()
}

// columnSpec returns the tabular column specification, e.g. "|l|l|".
func columnSpec(cfg *Config, cols int) string {
	var sb strings.Builder
	if cfg.VerticalBorders {
		sb.WriteByte('|')
	}
	for i := 0; i < cols; i++ {
		sb.WriteByte(cfg.Alignment.Spec())
		if cfg.VerticalBorders {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}

// beginLine returns the opening line of a table environment.
func beginLine(env string, cfg *Config, cols int) string {
	return `\begin{` + env + `}{` + columnSpec(cfg, cols) + "}\n"
}
