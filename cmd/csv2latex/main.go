// csv2latex translates a CSV file to a LaTeX document.
//
// Example: csv2latex january_stats.csv > january_stats.tex
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/csv2latex"
	"gopkg.in/alecthomas/kingpin.v2"
)

// version is set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const packageNotes = `The "longtable" option needs the {longtable} LaTeX package.
The "colorrows" option needs the {colortbl} LaTeX package.
The "reduce" option needs the {relsize} LaTeX package.`

// options holds the parsed command line.
type options struct {
	config       string
	noHead       bool
	bare         bool
	longTable    bool
	noEscape     bool
	guess        bool
	separator    string
	block        string
	lines        string
	position     string
	colorRows    string
	reduce       string
	repeatHeader bool
	noVLines     bool
	noHLines     bool
	encoding     string
	report       string
	output       string
	verbose      bool
	file         string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("csv2latex", "Translates a csv file to a LaTeX file.\n\n"+packageNotes)
	app.Version(fmt.Sprintf("csv2latex version %s (commit %s, built %s)", version, commit, date))
	app.VersionFlag.Short('v')
	app.HelpFlag.Short('h')

	app.Flag("config", "YAML preset applied before the other flags.").PlaceHolder("FILE").StringVar(&opts.config)
	app.Flag("nohead", "(LaTeX) no document header: useful for inclusion.").Short('n').BoolVar(&opts.noHead)
	app.Flag("bare", "(LaTeX) no document header or tabular environment: useful for inclusion.").Short('m').BoolVar(&opts.bare)
	app.Flag("longtable", "(LaTeX) use package longtable: useful for long input.").Short('t').BoolVar(&opts.longTable)
	app.Flag("noescape", "(LaTeX) do not escape text: useful for mixed CSV/TeX input.").Short('x').BoolVar(&opts.noEscape)
	app.Flag("guess", "(CSV) guess separator and block delimiter.").Short('g').BoolVar(&opts.guess)
	app.Flag("separator", "(CSV) field separator: (c)omma, (s)emicolon, (t)ab, s(p)ace, co(l)on.").Short('s').PlaceHolder("c").StringVar(&opts.separator)
	app.Flag("block", "(CSV) block delimiter: (q)uote, (d)ouble, (n)one.").Short('b').PlaceHolder("n").StringVar(&opts.block)
	app.Flag("lines", "(LaTeX) rows per table: useful for long tabulars, 0 for no limit.").Short('l').PlaceHolder("40").StringVar(&opts.lines)
	app.Flag("position", "(LaTeX) text align in cells: l, c or r.").Short('p').PlaceHolder("l").StringVar(&opts.position)
	app.Flag("colorrows", "(LaTeX) alternate gray rows, e.g. 0.75.").Short('c').PlaceHolder("GRAYLEVEL").StringVar(&opts.colorRows)
	app.Flag("reduce", "(LaTeX) reduce table size, from 0 to 4.").Short('r').PlaceHolder("LEVEL").StringVar(&opts.reduce)
	app.Flag("repeatheader", "(LaTeX) repeat the first row at the top of every table.").Short('e').BoolVar(&opts.repeatHeader)
	app.Flag("novlines", "(LaTeX) don't put vline between columns.").Short('y').BoolVar(&opts.noVLines)
	app.Flag("nohlines", "(LaTeX) don't put hline between table rows.").Short('z').BoolVar(&opts.noHLines)
	app.Flag("encoding", "(LaTeX) inputenc option of the document header.").PlaceHolder("latin1").StringVar(&opts.encoding)
	app.Flag("report", "write a scan report to stderr: json, yaml or table.").PlaceHolder("FORMAT").StringVar(&opts.report)
	app.Flag("output", "write the document to FILE instead of stdout.").Short('o').PlaceHolder("FILE").StringVar(&opts.output)
	app.Flag("verbose", "log debug diagnostics to stderr.").BoolVar(&opts.verbose)
	app.Arg("file", "CSV file, - for stdin.").Required().StringVar(&opts.file)
	return app
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts)
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	if len(args) == 0 {
		app.Usage(nil)
		return 0
	}
	if _, err := app.Parse(args); err != nil {
		return fail(stderr, "%v, try --help", err)
	}

	cfg, err := opts.toConfig()
	if err != nil {
		return fail(stderr, "%v", err)
	}
	cfg.Logger = csv2latex.NewLogger(stderr, opts.verbose)

	var report csv2latex.ReportFormat
	if opts.report != "" {
		if report, err = csv2latex.ParseReportFormat(opts.report); err != nil {
			return fail(stderr, "%v", err)
		}
	}

	src, closeSrc, err := openInput(opts.file, stdin)
	if err != nil {
		return fail(stderr, "Can't open file %s: %v", opts.file, err)
	}
	defer closeSrc()

	cfg, dims, err := csv2latex.Measure(src, cfg)
	if errors.Is(err, csv2latex.ErrEmptyInput) || errors.Is(err, csv2latex.ErrNoSeparator) {
		return fail(stderr, "%v: please run again by using --block (if any) and --separator", err)
	}
	if err != nil {
		return fail(stderr, "%v", err)
	}
	if report != "" {
		if err := csv2latex.WriteReport(stderr, report, csv2latex.NewReport(opts.file, cfg, dims)); err != nil {
			return fail(stderr, "%v", err)
		}
	}

	if opts.output == "" {
		if err := csv2latex.WriteDocument(stdout, src, cfg, dims); err != nil {
			return fail(stderr, "%v", err)
		}
		return 0
	}
	f, err := createOutput(opts.output)
	if err != nil {
		return fail(stderr, "cannot create %s: %v", opts.output, err)
	}
	err = csv2latex.WriteDocument(f, src, cfg, dims)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(stderr, "cannot write %s: %v", opts.output, err)
	}
	return 0
}

// createOutput opens the --output file.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}


// toConfig builds the conversion config: defaults, then the preset
// file, then the flags.
func (o *options) toConfig() (csv2latex.Config, error) {
	cfg := csv2latex.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = csv2latex.LoadConfig(o.config); err != nil {
			return cfg, err
		}
	}

	var err error
	if o.separator != "" {
		if cfg.Separator, err = csv2latex.ParseSeparator(o.separator); err != nil {
			return cfg, err
		}
	}
	if o.block != "" {
		if cfg.Quote, err = csv2latex.ParseQuote(o.block); err != nil {
			return cfg, err
		}
	}
	if o.lines != "" {
		if cfg.RowsPerBlock, err = csv2latex.ParseRowsPerBlock(o.lines); err != nil {
			return cfg, err
		}
	}
	if o.position != "" {
		if cfg.Alignment, err = csv2latex.ParseAlignment(o.position); err != nil {
			return cfg, err
		}
	}
	if o.colorRows != "" {
		if cfg.RowShade, err = csv2latex.ParseGrayLevel(o.colorRows); err != nil {
			return cfg, err
		}
	}
	if o.reduce != "" {
		if cfg.Shrink, err = csv2latex.ParseShrinkLevel(o.reduce); err != nil {
			return cfg, err
		}
	}
	if o.encoding != "" {
		cfg.Encoding = o.encoding
	}
	if o.guess {
		cfg.Guess = true
	}
	if o.noHead {
		cfg.Header = false
	}
	if o.bare {
		cfg.Bare = true
	}
	if o.longTable {
		cfg.LongTable = true
	}
	if o.noEscape {
		cfg.Escape = false
	}
	if o.repeatHeader {
		cfg.RepeatHeader = true
	}
	if o.noVLines {
		cfg.VerticalBorders = false
	}
	if o.noHLines {
		cfg.HorizontalBorders = false
	}
	return cfg, cfg.Validate()
}

func openInput(path string, stdin io.Reader) (io.ReadSeeker, func(), error) {
	if path == "-" {
		src, err := csv2latex.NewSource(stdin)
		return src, func() {}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// fail prints a formatted error message and returns exit status 1.
func fail(stderr io.Writer, format string, args ...any) int {
	fmt.Fprintf(stderr, "csv2latex: "+format+"\n", args...)
	return 1
}
