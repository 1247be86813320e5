package csv2latex

import (
	"bytes"
	"io"

	"github.com/olekukonko/errors"
)

// NewSource returns r as an io.ReadSeeker so it can be read once per pass.
// Seekable readers are returned unchanged; anything else (pipes, stdin) is
// read fully into memory.
func NewSource(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		if _, err := rs.Seek(0, io.SeekCurrent); err == nil {
			return rs, nil
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Newf("buffer input").Wrap(err)
	}
	return bytes.NewReader(data), nil
}

func rewind(src io.Seeker) error {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Newf("rewind input").Wrap(err)
	}
	return nil
}
