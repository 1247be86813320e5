package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(stdin string, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

const twoByTwo = `\begin{tabular}{|l|l|}
\hline
a&b\\
\hline
1&2\\
\hline
\end{tabular}
`

func TestRun(t *testing.T) {
	t.Parallel()
	csv := writeTemp(t, "in.csv", "a,b\n1,2\n")
	preset := writeTemp(t, "preset.yaml", "separator: s\nvlines: false\nhlines: false\n")
	semi := writeTemp(t, "semi.csv", "a;b\n")
	lonely := writeTemp(t, "lonely.csv", "lonely\n")

	tests := map[string]struct {
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		"no head": {
			args:       []string{"--nohead", csv},
			wantStdout: twoByTwo,
		},
		"short flags": {
			args:       []string{"-n", "-p", "r", "-y", csv},
			wantStdout: strings.ReplaceAll(twoByTwo, "{|l|l|}", "{rr}"),
		},
		"stdin": {
			args:       []string{"-n", "--", "-"},
			stdin:      "a,b\n1,2\n",
			wantStdout: twoByTwo,
		},
		"preset": {
			args:       []string{"--config", preset, "--nohead", semi},
			wantStdout: "\\begin{tabular}{ll}\na&b\\\\\n\\end{tabular}\n",
		},
		"full document": {
			args:       []string{"--encoding", "utf8", csv},
			wantStdout: "\\documentclass[a4paper]{article}\n\\usepackage[T1]{fontenc}\n\\usepackage[utf8]{inputenc}\n\\begin{document}\n" + twoByTwo + "\\end{document}\n",
		},
		"report": {
			args:       []string{"-n", "--report", "json", csv},
			wantStdout: twoByTwo,
			wantStderr: `"rows": 2`,
		},
		"missing file": {
			args:       []string{filepath.Join(t.TempDir(), "nope.csv")},
			wantCode:   1,
			wantStderr: "Can't open file",
		},
		"bad lines": {
			args:       []string{"--lines=abc", csv},
			wantCode:   1,
			wantStderr: `"lines"`,
		},
		"bad report format": {
			args:       []string{"--report", "xml", csv},
			wantCode:   1,
			wantStderr: "unsupported report format",
		},
		"unknown flag": {
			args:       []string{"--frobnicate", csv},
			wantCode:   1,
			wantStderr: "try --help",
		},
		"guess failure": {
			args:       []string{"--guess", lonely},
			wantCode:   1,
			wantStderr: "please run again by using --block (if any) and --separator",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runCmd(tt.stdin, tt.args...)
			assert.Equal(t, tt.wantCode, code, stderr)
			if tt.wantCode == 0 {
				assert.Equal(t, tt.wantStdout, stdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()
	code, stdout, _ := runCmd("")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--separator")
	assert.Contains(t, stdout, "longtable")
}

func TestRunOutputFile(t *testing.T) {
	t.Parallel()
	csv := writeTemp(t, "in.csv", "a,b\n1,2\n")
	out := filepath.Join(t.TempDir(), "out.tex")

	code, stdout, stderr := runCmd("", "-n", "-o", out, csv)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, twoByTwo, string(got))
}

func TestRunGuessLogsToStderr(t *testing.T) {
	t.Parallel()
	csv := writeTemp(t, "quoted.csv", "'a';'b'\n'1';'2'\n")
	code, stdout, stderr := runCmd("", "-n", "-g", csv)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, twoByTwo, stdout)
	assert.Contains(t, stderr, "Guessed ';' as Separator")
}

type failingCloser struct {
	bytes.Buffer
}

func (*failingCloser) Close() error { return errors.New("disk quota exceeded") }

// Not parallel: swaps createOutput.
func TestRunReportsCloseError(t *testing.T) {
	csv := writeTemp(t, "in.csv", "a,b\n1,2\n")
	sink := &failingCloser{}
	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return sink, nil }
	t.Cleanup(func() { createOutput = orig })

	code, _, stderr := runCmd("", "-n", "-o", "out.tex", csv)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "cannot write out.tex: disk quota exceeded")
	assert.Equal(t, twoByTwo, sink.String())
}

func TestRunOutputCreateError(t *testing.T) {
	t.Parallel()
	csv := writeTemp(t, "in.csv", "a,b\n")
	out := filepath.Join(t.TempDir(), "missing", "out.tex")
	code, _, stderr := runCmd("", "-o", out, csv)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "cannot create")
}

func TestVersionShortFlag(t *testing.T) {
	t.Parallel()
	var opts options
	var short rune
	for _, f := range newApp(&opts).Model().Flags {
		if f.Name == "version" {
			short = f.Short
		}
	}
	assert.Equal(t, 'v', short)
}
