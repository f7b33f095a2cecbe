// internal/cli/options.go
package cli

import (
	"fmt"
	"io"
	"strconv"

	"wfq/internal/filter"
	"wfq/internal/render"
	"wfq/internal/version"
)

// Options holds the parsed command line.
type Options struct {
	// Relic is true when --relic was present at all; RelicTag is the
	// parsed era ("" when absent or unrecognized). RelicTagRaw keeps the
	// raw value of an unrecognized tag so the caller can warn about the
	// degraded match-any-era behavior.
	Relic       bool
	RelicTag    filter.RelicType
	RelicTagRaw string

	Search   string
	Format   string // render.Format*
	LogItems bool
	Width    int // 0 = detect from the output stream

	Version bool
	Help    bool
}

// ParseArgs scans argv in a single order-independent pass. The flag
// grammar follows the source convention: --relic takes an optional tag,
// --search takes the next entry verbatim, and unrecognized entries are
// ignored so a stray tag candidate never breaks the scan.
func ParseArgs(argv []string) (Options, error) {
	opt := Options{Format: render.FormatDetail}
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--relic":
			opt.Relic = true
			if i+1 >= len(argv) {
				continue
			}
			if tag, ok := filter.ParseRelicType(argv[i+1]); ok {
				opt.RelicTag = tag
				i++
			} else if len(argv[i+1]) > 0 && argv[i+1][0] != '-' {
				// Unrecognized tag: consume it, degrade to any-era.
				opt.RelicTagRaw = argv[i+1]
				i++
			}
		case "--search":
			if i+1 < len(argv) {
				opt.Search = argv[i+1]
				i++
			}
		case "--fmt:search":
			opt.Format = render.FormatSearch
		case "--fmt:json":
			opt.Format = render.FormatJSON
		case "--log-items":
			opt.LogItems = true
		case "--width":
			if i+1 >= len(argv) {
				return opt, fmt.Errorf("--width requires a column count")
			}
			n, err := strconv.Atoi(argv[i+1])
			if err != nil || n <= 0 {
				return opt, fmt.Errorf("invalid --width %q", argv[i+1])
			}
			if n < render.MinWidth {
				return opt, fmt.Errorf("--width must be at least %d columns", render.MinWidth)
			}
			opt.Width = n
			i++
		case "-v", "--version":
			opt.Version = true
		case "-h", "--help":
			opt.Help = true
		}
	}
	return opt, nil
}

// Usage writes the help text.
func Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, `wfq: filter and format a batch of game-item records

Reads a JSON array of items on stdin, filters it, and writes the
survivors to stdout. Without --log-items the run is silent.

Usage: wfq [flags] < items.json

  --relic [tag]   keep only Relic-category items; the optional era tag
                  (lith | meso | neo | axi, case-insensitive) narrows
                  the match to one era
  --search TERM   keep items whose name or uniqueName starts with TERM
  --fmt:search    compact listing (relic short names when --relic is on)
  --fmt:json      JSON array of the surviving items
  --log-items     actually print; omitting it runs the pipeline silently
  --width N       override the detected terminal width (detail mode)
  -v, --version   print version and exit
  -h, --help      show this help

Version: %s
`, version.Version)
}
