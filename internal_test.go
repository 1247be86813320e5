package csv2latex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(lx *lexer, input string) []class {
	out := make([]class, len(input))
	for i := 0; i < len(input); i++ {
		out[i] = lx.next(input[i])
	}
	return out
}

func TestLexerMeasuringRules(t *testing.T) {
	t.Parallel()
	lx := newLexer(',', '\'', false)
	got := classify(lx, "'a,b',c\n")
	assert.Equal(t, []class{
		classQuote, classData, classData, classData, classQuote,
		classSeparator, classIgnored, classNewline,
	}, got)
	assert.Equal(t, stateNormal, lx.state)
}

func TestLexerUnquotedCountsDoubleQuotes(t *testing.T) {
	t.Parallel()
	lx := newLexer(',', 0, false)
	got := classify(lx, `"a,b"`)
	assert.Equal(t, []class{classData, classData, classSeparator, classData, classData}, got)
}

func TestLexerRawRun(t *testing.T) {
	t.Parallel()
	lx := newLexer(',', 0, true)
	got := classify(lx, `"a,b",c`)
	assert.Equal(t, []class{
		classIgnored, classData, classData, classData, classIgnored,
		classSeparator, classData,
	}, got)
	assert.Equal(t, stateNormal, lx.state)
}

func TestLexerTripleQuote(t *testing.T) {
	t.Parallel()
	lx := newLexer(',', 0, true)
	got := classify(lx, `"""`)
	assert.Equal(t, []class{classIgnored, classIgnored, classData}, got)
	assert.True(t, lx.in(stateRawRun))
}

func TestLexerNewlineClosesBlockOnly(t *testing.T) {
	t.Parallel()
	lx := newLexer(';', '\'', true)
	classify(lx, `'"x`)
	require.True(t, lx.in(stateQuoted))
	require.True(t, lx.in(stateRawRun))

	assert.Equal(t, classNewline, lx.next('\n'))
	assert.False(t, lx.in(stateQuoted))
	assert.True(t, lx.in(stateRawRun))
}

func TestClassString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "separator", classSeparator.String())
	assert.Equal(t, "ignored", classIgnored.String())
}

func TestColumnSpec(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	assert.Equal(t, "|l|l|l|", columnSpec(&cfg, 3))
	cfg.VerticalBorders = false
	cfg.Alignment = AlignRight
	assert.Equal(t, "rr", columnSpec(&cfg, 2))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, AlignRight))
	assert.Equal(t, " ab ", alignCell("ab", 4, AlignCenter))
	assert.Equal(t, "日本", alignCell("日本", 3, AlignLeft))
}

func TestRenderLogsDroppedLine(t *testing.T) {
	t.Parallel()
	var log bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = NewLogger(&log, true)
	var out bytes.Buffer
	require.NoError(t, Render(&out, strings.NewReader("a\nb"), cfg, Dimensions{Columns: 1, Rows: 1}))
	assert.Equal(t, "a\\\\\n\\hline\n", out.String())
	assert.Contains(t, log.String(), "unterminated")
}
