package csv2latex

import (
	"io"
	"os"

	"github.com/olekukonko/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of Config. Absent keys keep their default.
type fileConfig struct {
	Separator    *string `yaml:"separator"`
	Block        *string `yaml:"block"`
	Guess        *bool   `yaml:"guess"`
	Position     *string `yaml:"position"`
	Lines        *uint   `yaml:"lines"`
	Header       *bool   `yaml:"header"`
	Bare         *bool   `yaml:"bare"`
	Escape       *bool   `yaml:"escape"`
	RepeatHeader *bool   `yaml:"repeat_header"`
	VLines       *bool   `yaml:"vlines"`
	HLines       *bool   `yaml:"hlines"`
	LongTable    *bool   `yaml:"longtable"`
	ColorRows    *string `yaml:"colorrows"`
	Reduce       *int    `yaml:"reduce"`
	Encoding     *string `yaml:"encoding"`
	Escapes      *string `yaml:"escapes"`
}

// LoadConfig reads a YAML preset from path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Newf("open config %s", path).Wrap(err)
	}
	defer f.Close()
	return ReadConfig(f, DefaultConfig())
}

// ReadConfig decodes a YAML preset from r and applies it on top of base.
// Enumerated values use the command line short codes, e.g.
//
//	separator: s
//	block: d
//	position: c
//	lines: 30
//	colorrows: "0.8"
func ReadConfig(r io.Reader, base Config) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return Config{}, errors.Newf("decode config").Wrap(err)
	}
	cfg := base
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	var err error
	if fc.Separator != nil {
		if cfg.Separator, err = ParseSeparator(*fc.Separator); err != nil {
			return err
		}
	}
	if fc.Block != nil {
		if cfg.Quote, err = ParseQuote(*fc.Block); err != nil {
			return err
		}
	}
	if fc.Position != nil {
		if cfg.Alignment, err = ParseAlignment(*fc.Position); err != nil {
			return err
		}
	}
	if fc.ColorRows != nil {
		if cfg.RowShade, err = ParseGrayLevel(*fc.ColorRows); err != nil {
			return err
		}
	}
	if fc.Reduce != nil {
		if *fc.Reduce < 0 {
			return &OptionError{Option: "reduce", Value: "negative", Reason: "needs an integer value between 0 and 4"}
		}
		cfg.Shrink = min(*fc.Reduce, MaxShrink)
	}
	setBool(&cfg.Guess, fc.Guess)
	setBool(&cfg.Header, fc.Header)
	setBool(&cfg.Bare, fc.Bare)
	setBool(&cfg.Escape, fc.Escape)
	setBool(&cfg.RepeatHeader, fc.RepeatHeader)
	setBool(&cfg.VerticalBorders, fc.VLines)
	setBool(&cfg.HorizontalBorders, fc.HLines)
	setBool(&cfg.LongTable, fc.LongTable)
	if fc.Lines != nil {
		cfg.RowsPerBlock = *fc.Lines
	}
	if fc.Encoding != nil {
		cfg.Encoding = *fc.Encoding
	}
	if fc.Escapes != nil {
		cfg.Escapes = ParseEscapes(*fc.Escapes)
	}
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
