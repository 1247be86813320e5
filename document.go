package csv2latex

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDocument writes the full markup for r: the optional preamble, the
// table environment, the rows rendered by Render and the closing lines.
// dims must come from a Scan of the same input.
func WriteDocument(w io.Writer, r io.Reader, cfg Config, dims Dimensions) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	if err := writeDocument(out, r, &cfg, dims); err != nil {
		return err
	}
	return out.Flush()
}

func writeDocument(out *bufio.Writer, r io.Reader, cfg *Config, dims Dimensions) error {
	shade := cfg.RowShade != ""
	if cfg.Header {
		out.WriteString(`\documentclass[a4paper]{article}` + "\n")
		out.WriteString(`\usepackage[T1]{fontenc}` + "\n")
		fmt.Fprintf(out, `\usepackage[%s]{inputenc}`+"\n", cfg.Encoding)
		if cfg.Shrink > 0 {
			out.WriteString(`\usepackage{relsize}` + "\n")
		}
		if shade {
			out.WriteString(`\usepackage{colortbl}` + "\n")
		}
		if cfg.LongTable {
			out.WriteString(`\usepackage{longtable}` + "\n")
		}
		out.WriteString(`\begin{document}` + "\n")
	}
	if shade {
		fmt.Fprintf(out, `\def\colorrow{\rowcolor[gray]{%s}}`+"\n", cfg.RowShade)
	}
	if cfg.Shrink > 0 {
		fmt.Fprintf(out, `\relsize{-%s}`+"\n", relsizeSteps[cfg.Shrink])
		fmt.Fprintf(out, `\addtolength\tabcolsep{-%sem}`+"\n", tabcolsepSteps[cfg.Shrink])
	}

	env := environment(cfg)
	if !cfg.Bare {
		out.WriteString(beginLine(env, cfg, dims.Columns))
	}
	if cfg.HorizontalBorders {
		out.WriteString(hline)
	}
	if err := render(out, r, cfg, dims); err != nil {
		return err
	}
	if !cfg.Bare {
		out.WriteString(`\end{` + env + `}` + "\n")
	}

	if cfg.Shrink > 0 {
		fmt.Fprintf(out, `\addtolength\tabcolsep{+%sem}`+"\n", tabcolsepSteps[cfg.Shrink])
		fmt.Fprintf(out, `\relsize{+%s}`+"\n", relsizeSteps[cfg.Shrink])
	}
	if cfg.Header {
		out.WriteString(`\end{document}` + "\n")
	}
	return nil
}

func environment(cfg *Config) string {
	if cfg.LongTable {
		return "longtable"
	}
	return "tabular"
}
