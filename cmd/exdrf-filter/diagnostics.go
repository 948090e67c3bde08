package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	exdrf "github.com/TNick/exdrf-sub001"
)

// printDiagnostic writes a compiler style diagnostic: the location line,
// the offending source line and a caret marker under the span.
func printDiagnostic(w io.Writer, name string, err error) {
	red := color.New(color.FgRed)

	var synErr *exdrf.SyntaxError
	if !errors.As(err, &synErr) {
		red.Fprintf(w, "%s: %v\n", name, err)
		return
	}

	red.Fprintf(w, "%s:%d:%d: %v\n", name, synErr.Line, synErr.Column, synErr)

	line, ok := sourceLine(synErr.Source, synErr.Line)
	if !ok {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", synErr.Column-1),
		strings.Repeat("^", caretWidth(synErr, line)))
}

// sourceLine returns the 1-based line of source, without its line break.
func sourceLine(source string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}

	return lines[line-1], true
}

// caretWidth clips the diagnostic span to the reported line. Empty spans,
// raised at the end of the input, still get one caret.
func caretWidth(e *exdrf.SyntaxError, line string) int {
	width := e.EndOffset - e.Offset

	if room := len([]rune(line)) - (e.Column - 1); width > room {
		width = room
	}
	if width < 1 {
		width = 1
	}

	return width
}
