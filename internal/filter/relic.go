// internal/filter/relic.go
package filter

import (
	"strings"

	"wfq/internal/item"
)

// RelicType is one of the four relic eras. The zero value matches any era.
type RelicType string

const (
	Lith RelicType = "lith"
	Meso RelicType = "meso"
	Neo  RelicType = "neo"
	Axi  RelicType = "axi"
)

// ParseRelicType maps a tag string to its era, case-insensitively.
// Anything outside the four eras reports ok=false.
func ParseRelicType(s string) (RelicType, bool) {
	switch RelicType(strings.ToLower(s)) {
	case Lith:
		return Lith, true
	case Meso:
		return Meso, true
	case Neo:
		return Neo, true
	case Axi:
		return Axi, true
	}
	return "", false
}

const relicCategory = "Relic"

// ByRelic keeps items whose category is "Relic". A non-zero tag
// additionally requires the item's uniqueName, lower-cased, to start with
// the era literal. Input order is preserved; the input slice is not
// mutated.
func ByRelic(items []item.Item, tag RelicType) []item.Item {
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if it.Category == nil || *it.Category != relicCategory {
			continue
		}
		if tag != "" && !strings.HasPrefix(strings.ToLower(it.UniqueName), string(tag)) {
			continue
		}
		out = append(out, it)
	}
	return out
}
