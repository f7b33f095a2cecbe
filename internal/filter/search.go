// internal/filter/search.go
package filter

import (
	"strings"

	"wfq/internal/item"
)

// BySearch keeps items whose name or uniqueName starts with term,
// case-insensitively. An empty term is a pass-through. Order is
// preserved and the predicate is idempotent: filtering twice with the
// same term yields the single-pass result.
func BySearch(items []item.Item, term string) []item.Item {
	if term == "" {
		return items
	}
	t := strings.ToLower(term)
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it.Name), t) ||
			strings.HasPrefix(strings.ToLower(it.UniqueName), t) {
			out = append(out, it)
		}
	}
	return out
}
