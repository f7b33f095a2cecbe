// internal/render/search.go
package render

import (
	"fmt"
	"io"

	"wfq/internal/item"
)

// WriteSearch prints the compact listing. With relicMode set, each item's
// relic short name is printed once in first-seen order; the seen-set is
// local to the call, so repeated renders start clean. Without relicMode
// every item prints as "Name (UniqueName)" with no deduplication.
func WriteSearch(w io.Writer, items []item.Item, relicMode bool) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if !relicMode {
			if _, err := fmt.Fprintf(w, "%s (%s)\n", it.Name, it.UniqueName); err != nil {
				return err
			}
			continue
		}
		short := it.ShortName()
		if _, dup := seen[short]; dup {
			continue
		}
		seen[short] = struct{}{}
		if _, err := fmt.Fprintln(w, short); err != nil {
			return err
		}
	}
	return nil
}
