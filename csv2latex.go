package csv2latex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrNoSeparator  = errors.New("no separator found")
	ErrInvalidValue = errors.New("invalid option value")
)

// Alignment controls the text position inside every cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Spec returns the tabular column letter for the alignment.
func (a Alignment) Spec() byte {
	switch a {
	case AlignCenter:
		return 'c'
	case AlignRight:
		return 'r'
	default:
		return 'l'
	}
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// MaxShrink is the highest table reduction level.
const MaxShrink = 4

var (
	relsizeSteps   = [MaxShrink + 1]string{"0", "0.5", "1", "2", "4"}
	tabcolsepSteps = [MaxShrink + 1]string{"0", "0.05", "0.1", "0.2", "0.4"}
)

// Config holds every knob of a conversion. It is read-only once a
// conversion starts.
type Config struct {
	// Separator divides fields within a row (default ',').
	Separator byte

	// Quote encloses a field so the separator can appear in it.
	// Zero disables block quoting.
	Quote byte

	// Guess sniffs Separator and Quote from the first input line.
	Guess bool

	// Alignment applies to every column.
	Alignment Alignment

	// RowsPerBlock is the number of rows per tabular environment.
	// Zero means a single block.
	RowsPerBlock uint

	// Header emits the document preamble and closing.
	Header bool

	// Bare emits only the rows, without a tabular environment.
	// It implies Header and LongTable are off.
	Bare bool

	// Escape replaces TeX control characters with their escape sequence.
	Escape bool

	// RepeatHeader replays the first row at the top of every block.
	RepeatHeader bool

	VerticalBorders   bool
	HorizontalBorders bool

	// LongTable renders all rows in one page-breaking longtable.
	LongTable bool

	// RowShade is a gray level between 0 and 1 for alternate rows.
	// Empty disables shading.
	RowShade string

	// Shrink reduces font size and column spacing, from 0 to MaxShrink.
	Shrink int

	// Encoding is the inputenc option written in the preamble.
	Encoding string

	// Escapes maps each TeX control byte to its replacement.
	// Nil means DefaultEscapes.
	Escapes EscapeTable

	// Logger receives diagnostics. Nil discards them.
	Logger *ll.Logger
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Separator:         ',',
		Alignment:         AlignLeft,
		RowsPerBlock:      40,
		Header:            true,
		Escape:            true,
		VerticalBorders:   true,
		HorizontalBorders: true,
		Encoding:          "latin1",
		Escapes:           DefaultEscapes(),
	}
}

// Validate normalizes c and reports the first broken invariant.
func (c *Config) Validate() error {
	if c.Bare {
		c.Header = false
		c.LongTable = false
	}
	if c.Escapes == nil {
		c.Escapes = DefaultEscapes()
	}
	if c.Encoding == "" {
		c.Encoding = "latin1"
	}
	if c.Separator == 0 || c.Separator == '\n' {
		return &OptionError{Option: "separator", Value: strconv.QuoteRune(rune(c.Separator)), Reason: "must be a printable character"}
	}
	if c.Quote != 0 && c.Quote == c.Separator {
		return &OptionError{Option: "block", Value: string(c.Quote), Reason: "must differ from the separator"}
	}
	if c.Quote == '\n' {
		return &OptionError{Option: "block", Value: `\n`, Reason: "must not be a newline"}
	}
	if c.Shrink < 0 || c.Shrink > MaxShrink {
		return &OptionError{Option: "reduce", Value: strconv.Itoa(c.Shrink), Reason: "needs an integer value between 0 and 4"}
	}
	if c.Alignment < AlignLeft || c.Alignment > AlignRight {
		return &OptionError{Option: "position", Value: strconv.Itoa(int(c.Alignment)), Reason: "must be l, c or r"}
	}
	if c.RowShade != "" {
		if _, err := ParseGrayLevel(c.RowShade); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) logger() *ll.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger
}

// OptionError reports an option value that cannot be used.
type OptionError struct {
	Option string // option name, e.g. "lines"
	Value  string // offending value
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %q %s (got %q)", e.Option, e.Reason, e.Value)
}

// Unwrap lets callers match any OptionError against ErrInvalidValue.
func (e *OptionError) Unwrap() error { return ErrInvalidValue }

var separatorCodes = map[string]byte{
	"c": ',', "comma": ',',
	"s": ';', "semicolon": ';',
	"t": '\t', "tab": '\t',
	"p": ' ', "space": ' ',
	"l": ':', "colon": ':',
}

// ParseSeparator converts a separator short code (c, s, t, p, l) or its
// long name into the separator byte.
func ParseSeparator(s string) (byte, error) {
	if b, ok := separatorCodes[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, &OptionError{Option: "separator", Value: s, Reason: "must be one of (c)omma, (s)emicolon, (t)ab, s(p)ace, co(l)on"}
}

var quoteCodes = map[string]byte{
	"q": '\'', "quote": '\'',
	"d": '"', "double": '"',
	"n": 0, "none": 0,
}

// ParseQuote converts a block delimiter short code (q, d, n) or its long
// name into the quote byte. "n" yields 0.
func ParseQuote(s string) (byte, error) {
	if b, ok := quoteCodes[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, &OptionError{Option: "block", Value: s, Reason: "must be one of (q)uote, (d)ouble, (n)one"}
}

// ParseAlignment parses l, c, r or left, center, right.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return AlignLeft, nil
	case "c", "center":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	}
	return AlignLeft, &OptionError{Option: "position", Value: s, Reason: "must be l, c or r"}
}

// ParseRowsPerBlock parses a non-negative row count.
func ParseRowsPerBlock(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, &OptionError{Option: "lines", Value: s, Reason: "needs a positive integer value"}
	}
	return uint(n), nil
}

// ParseShrinkLevel parses a reduction level. Values above MaxShrink are
// clamped.
func ParseShrinkLevel(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &OptionError{Option: "reduce", Value: s, Reason: "needs an integer value between 0 and 4"}
	}
	return min(n, MaxShrink), nil
}

// ParseGrayLevel checks that s is a plain decimal between 0 and 1, such as
// "0.75" or ".5", and returns it unchanged, ready to be written into the
// shading macro.
func ParseGrayLevel(s string) (string, error) {
	s = strings.TrimSpace(s)
	bad := &OptionError{Option: "colorrows", Value: s, Reason: "needs a real value between 0 and 1"}
	if !isDecimal(s) {
		return "", bad
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return "", bad
	}
	return s, nil
}

// isDecimal reports whether s holds only digits and at most one dot, with
// at least one digit.
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
