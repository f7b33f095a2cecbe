// internal/render/registry.go
package render

import (
	"fmt"
	"io"

	"wfq/internal/item"
)

// Format names accepted by Write.
const (
	FormatDetail = "detail"
	FormatSearch = "search"
	FormatJSON   = "json"
)

// Params carries the per-run knobs a writer may need.
type Params struct {
	// Width is the terminal column count, Detail mode only.
	Width int
	// RelicMode switches search mode to deduplicated relic short names.
	RelicMode bool
}

// Writer registry (format → handler); registered from init below.
var writers = map[string]func(io.Writer, []item.Item, Params) error{}

func register(format string, fn func(io.Writer, []item.Item, Params) error) {
	writers[format] = fn
}

func init() {
	register(FormatDetail, func(w io.Writer, items []item.Item, p Params) error {
		return WriteDetail(w, items, DetailOptions{Width: p.Width})
	})
	register(FormatSearch, func(w io.Writer, items []item.Item, p Params) error {
		return WriteSearch(w, items, p.RelicMode)
	})
	register(FormatJSON, func(w io.Writer, items []item.Item, _ Params) error {
		return WriteJSON(w, items)
	})
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, items []item.Item, p Params) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, items, p)
}
