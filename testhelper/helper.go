// Package testhelper carries small helpers shared by the package tests.
package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent removes the leading newline and the common indentation a raw
// string literal picks up from the surrounding source. Tabs past the common
// indentation are kept, so tab-indented fixtures survive intact.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	first := lines[1]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]

	trimmed := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		trimmed = append(trimmed, strings.TrimPrefix(line, indent))
	}

	return strings.Join(trimmed, "\n")
}
