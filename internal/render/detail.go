// internal/render/detail.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wfq/internal/item"
	"wfq/internal/termwidth"
)

// Absent optional fields render this sentinel rather than being omitted,
// so every block carries the same field lines.
const notPresent = "NOT PRESENT"

// Border blocks never shrink below this interior width, no matter how
// narrow the terminal reports itself. A detected width below MinWidth is
// clamped; an explicit --width below it is rejected at parse time.
const minBorderWidth = 10

// MinWidth is the narrowest terminal width detail mode honors exactly:
// the minimum interior plus the two border columns.
const MinWidth = minBorderWidth + 2

// DetailOptions control the bordered per-item block.
type DetailOptions struct {
	// Width is the terminal column count; the border interior spans
	// Width-2 columns. Zero or negative means termwidth.Fallback.
	Width int
}

func orSentinel(s *string) string {
	if s == nil {
		return notPresent
	}
	return *s
}

func introducedDate(in *item.Introduced) string {
	if in == nil {
		return notPresent
	}
	return in.Date
}

// WriteDetail renders one bordered block per item. Field lines appear in
// fixed order, the description is word-wrapped to the border width, and
// reward item names follow the block one per line in source order.
func WriteDetail(w io.Writer, items []item.Item, opt DetailOptions) error {
	width := opt.Width
	if width <= 0 {
		width = termwidth.Fallback
	}
	border := width - 2
	if border < minBorderWidth {
		border = minBorderWidth
	}
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(border)

	for _, it := range items {
		lines := []string{
			"Name: " + it.Name,
			"UniqueName: " + it.UniqueName,
		}
		lines = append(lines, wrap("Description: ", orSentinel(it.Description), border)...)
		lines = append(lines,
			"Type: "+orSentinel(it.Type),
			fmt.Sprintf("Tradable: %t", it.Tradable),
			"Category: "+orSentinel(it.Category),
			"Product Category: "+orSentinel(it.ProductCategory),
			"Introduced Date: "+introducedDate(it.Introduced),
			"Estimated Vault Date: "+orSentinel(it.EstimatedVaultDate),
		)
		if _, err := fmt.Fprintln(w, frame.Render(strings.Join(lines, "\n"))); err != nil {
			return err
		}
		for _, rw := range it.Rewards {
			if _, err := fmt.Fprintln(w, rw.Item.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
