package csv2latex

import (
	"io"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/olekukonko/ll/lx"
)

var discardLogger = func() *ll.Logger {
	l := ll.New("csv2latex").Handler(lh.NewTextHandler(io.Discard))
	l.Disable()
	return l
}()

// NewLogger returns an enabled text logger writing to w. Debug messages are
// only written when verbose is set.
func NewLogger(w io.Writer, verbose bool) *ll.Logger {
	l := ll.New("csv2latex").Handler(lh.NewTextHandler(w))
	l.Enable()
	if verbose {
		l.Level(lx.LevelDebug)
	} else {
		l.Level(lx.LevelInfo)
	}
	return l
}
