// internal/render/json.go
package render

import (
	"encoding/json"
	"io"

	"wfq/internal/item"
)

// WriteJSON emits the surviving items as one pretty-indented JSON array,
// the same shape the loader accepts. An empty batch renders as [].
func WriteJSON(w io.Writer, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
