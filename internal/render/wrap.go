// internal/render/wrap.go
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Continuation lines are indented instead of re-prefixed with the label.
const contIndent = 2

// wrap greedily packs the whitespace-delimited words of text onto lines no
// wider than width display columns. The first line starts with label; a
// word that would overflow the current line starts a continuation line
// indented contIndent spaces. A first word that would overflow the label
// line but fits on an indent line pushes the label onto a line of its own.
// A word too wide for even an empty indent line is emitted alone rather
// than split, so word order is always preserved verbatim.
func wrap(label, text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{strings.TrimRight(label, " ")}
	}

	indent := strings.Repeat(" ", contIndent)
	var lines []string
	cur := label
	curW := runewidth.StringWidth(label)
	bare := true // no word placed on the current line yet

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if bare && cur == label && curW+ww > width && contIndent+ww <= width {
			// The label line cannot hold the first word; demote it.
			lines = append(lines, strings.TrimRight(label, " "))
			cur, curW = indent, contIndent
		}
		if !bare && curW+1+ww > width {
			lines = append(lines, cur)
			cur, curW, bare = indent, contIndent, true
		}
		if !bare {
			cur += " "
			curW++
		}
		cur += word
		curW += ww
		bare = false
	}
	return append(lines, cur)
}
