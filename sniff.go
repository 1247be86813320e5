package csv2latex

import (
	"bufio"
	"io"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
)

// Dialect is the separator and block delimiter of an input.
type Dialect struct {
	Separator byte
	Quote     byte // 0 when fields are not enclosed
}

// Sniff guesses the dialect from the first line of r.
//
// When the first byte is punctuation or a space it is taken as the block
// delimiter, and the byte following its closing occurrence is the separator.
// Otherwise the line is read as unquoted: alphanumerics are skipped and the
// first punctuation, tab or space is the separator.
//
// Sniff consumes part of r; callers rewind before the next pass. The logger
// may be nil.
func Sniff(r io.Reader, logger *ll.Logger) (Dialect, error) {
	if logger == nil {
		logger = discardLogger
	}
	br := bufio.NewReader(r)

	first, err := br.ReadByte()
	if err == io.EOF {
		logger.Error("empty file?")
		return Dialect{}, ErrEmptyInput
	}
	if err != nil {
		return Dialect{}, errors.Newf("sniff input").Wrap(err)
	}

	if isPunct(first) || first == ' ' {
		d := Dialect{Quote: first}
		logger.Infof("Guessed '%c' as Block Delimiter", d.Quote)
		c, err := skipUntil(br, func(c byte) bool { return c == d.Quote || c == '\n' })
		if err != nil && err != io.EOF {
			return Dialect{}, errors.Newf("sniff input").Wrap(err)
		}
		if err == io.EOF || c != d.Quote {
			logger.Error("Did not guess any Separator!")
			return Dialect{}, ErrNoSeparator
		}
		sep, err := br.ReadByte()
		if err != nil && err != io.EOF {
			return Dialect{}, errors.Newf("sniff input").Wrap(err)
		}
		if err == io.EOF || sep == '\n' || sep == d.Quote {
			logger.Error("Did not guess any Separator!")
			return Dialect{}, ErrNoSeparator
		}
		d.Separator = sep
		logger.Infof("Guessed '%c' as Separator", d.Separator)
		return d, nil
	}

	logger.Info("Guessed No Block Delimiter")
	// The first byte is part of the first field whatever it is.
	c, err := skipUntil(br, func(c byte) bool { return !isAlnum(c) })
	if err != nil && err != io.EOF {
		return Dialect{}, errors.Newf("sniff input").Wrap(err)
	}
	if err == io.EOF || !isPunct(c) && c != '\t' && c != ' ' {
		logger.Error("Did not guess any Separator!")
		return Dialect{}, ErrNoSeparator
	}
	d := Dialect{Separator: c}
	logger.Infof("Guessed '%c' as Separator", d.Separator)
	return d, nil
}

// skipUntil reads bytes until stop reports true and returns that byte.
func skipUntil(br *bufio.Reader, stop func(byte) bool) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if stop(c) {
			return c, nil
		}
	}
}

// isPunct matches the C locale ispunct: printable ASCII that is neither a
// letter, a digit nor a space.
func isPunct(c byte) bool {
	return c > ' ' && c < 0x7f && !isAlnum(c)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
