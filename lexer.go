package csv2latex

// state is the quoting state of the lexer. The quoted block and the raw
// double-quote run are tracked independently, so both bits may be set.
type state uint8

const stateNormal state = 0

const (
	// stateQuoted is inside a block opened by the configured quote byte.
	stateQuoted state = 1 << iota
	// stateRawRun is inside a run opened by a literal '"', whatever the
	// configured quote. Separators are not split there.
	stateRawRun
)

// class is what the lexer decided a byte means.
type class uint8

const (
	classIgnored class = iota
	classNewline
	classSeparator
	classQuote
	classData
)

func (c class) String() string {
	switch c {
	case classNewline:
		return "newline"
	case classSeparator:
		return "separator"
	case classQuote:
		return "quote"
	case classData:
		return "data"
	default:
		return "ignored"
	}
}

// lexer classifies input bytes one at a time.
//
// With rawQuotes off it applies the measuring rules: every byte that is not
// a separator, a quote or a newline is data when it sits inside a block (or
// when quoting is off). With rawQuotes on it applies the emitting rules on
// top: a literal '"' toggles stateRawRun, separators inside that run are
// data, and '"' itself is only data when it closes a run of three.
type lexer struct {
	sep       byte
	quote     byte
	rawQuotes bool

	state        state
	prev1, prev2 byte
}

func newLexer(sep, quote byte, rawQuotes bool) *lexer {
	return &lexer{sep: sep, quote: quote, rawQuotes: rawQuotes}
}

func (l *lexer) in(s state) bool { return l.state&s != 0 }

// next advances the lexer over c.
func (l *lexer) next(c byte) class {
	prev1, prev2 := l.prev1, l.prev2
	l.prev2, l.prev1 = prev1, c

	if c == '\n' {
		// A raw run survives the end of line; a quoted block does not.
		l.state &^= stateQuoted
		return classNewline
	}
	if l.rawQuotes && c == '"' {
		l.state ^= stateRawRun
	}
	quoted := l.quote != 0 && l.in(stateQuoted)
	if c == l.sep && !quoted && !l.in(stateRawRun) {
		return classSeparator
	}
	if l.quote != 0 && c == l.quote {
		l.state ^= stateQuoted
		return classQuote
	}
	if l.quote != 0 && !quoted {
		return classIgnored
	}
	if l.rawQuotes && c == '"' && (prev1 != '"' || prev2 != '"') {
		return classIgnored
	}
	return classData
}
