package csv2latex

import (
	"bufio"
	"io"
)

// Convert runs the whole pipeline over src and writes the document to w:
// it sniffs the dialect when cfg.Guess is set, measures the input, then
// renders it. src is rewound between passes.
func Convert(w io.Writer, src io.ReadSeeker, cfg Config) error {
	cfg, dims, err := Measure(src, cfg)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	if err := writeDocument(out, src, &cfg, dims); err != nil {
		return err
	}
	return out.Flush()
}

// ConvertReader is Convert for inputs that cannot seek.
func ConvertReader(w io.Writer, r io.Reader, cfg Config) error {
	src, err := NewSource(r)
	if err != nil {
		return err
	}
	return Convert(w, src, cfg)
}

// Measure sniffs (when cfg.Guess is set) and scans src without rendering.
// It returns the configuration with the resolved dialect and the dimensions.
// src is left rewound.
func Measure(src io.ReadSeeker, cfg Config) (Config, Dimensions, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, Dimensions{}, err
	}
	if cfg.Guess {
		d, err := Sniff(src, cfg.Logger)
		if err != nil {
			return cfg, Dimensions{}, err
		}
		cfg.Separator, cfg.Quote = d.Separator, d.Quote
		if err := rewind(src); err != nil {
			return cfg, Dimensions{}, err
		}
	}
	dims, err := Scan(src, cfg)
	if err != nil {
		return cfg, Dimensions{}, err
	}
	if err := rewind(src); err != nil {
		return cfg, Dimensions{}, err
	}
	return cfg, dims, nil
}
