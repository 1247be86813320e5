// Package csv2latex translates CSV text into a LaTeX document or fragment.
//
// The conversion is a linear pipeline over a rewindable source: an optional
// [Sniff] of the first line to guess the dialect, a [Scan] pass that measures
// the input, and a [Render] pass that emits the rows as tabular markup.
// [WriteDocument] wraps the rows with the preamble and table environment,
// and [Convert] runs every step:
//
//	f, _ := os.Open("january_stats.csv")
//	defer f.Close()
//	csv2latex.Convert(os.Stdout, f, csv2latex.DefaultConfig())
//
// # Dialect
//
// Rows end at '\n'. Fields are split on [Config.Separator] unless they sit
// inside a block enclosed by [Config.Quote] (zero disables blocks). A
// literal double quote also opens a run in which separators are kept, and
// three consecutive double quotes produce one literal double quote. This is
// not an RFC 4180 parser: quoted fields never span lines.
//
// A last line without a trailing newline is neither measured nor rendered.
//
// # Layout
//
// Short rows are padded so every row has [Dimensions.Columns] cells. With
// [Config.RowsPerBlock] set, rows are split over several tabular
// environments; [Config.LongTable] keeps a single page-breaking longtable
// instead. [Config.RepeatHeader] replays the first row at the top of every
// block, [Config.RowShade] shades alternate rows and [Config.Shrink]
// reduces font size and column spacing.
//
// # Escaping
//
// With [Config.Escape], bytes found in [Config.Escapes] are replaced by
// their sequence. The default table covers \ _ # $ % ^ & { } ~.
//
// # Errors
//
//   - [ErrEmptyInput], [ErrNoSeparator]: sniffing failed
//   - [ErrInvalidValue]: matched by every [OptionError]
//   - [ErrUnsupportedFormat]: unknown report format
//
// Malformed quoting and ragged rows are never errors.
package csv2latex
