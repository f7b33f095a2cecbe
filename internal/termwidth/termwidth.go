// internal/termwidth/termwidth.go
package termwidth

import (
	"io"

	"golang.org/x/term"
)

// Fallback is the assumed column count when the output stream is not a
// terminal or its size cannot be queried.
const Fallback = 80

// Detect returns the column count of w when it is a terminal, Fallback
// otherwise. Renderers take the width as a plain int so they never touch
// a real terminal in tests.
func Detect(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return Fallback
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Fallback
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return Fallback
	}
	return cols
}
