// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The pipeline layers only point outward: item knows nothing of the
// filters or renderers, filters know nothing of rendering, and nothing
// below app may reach back into cli or the entrypoints.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"wfq/internal/item": {
			"wfq/internal/filter", "wfq/internal/render",
			"wfq/internal/cli", "wfq/internal/app", "wfq/cmd/",
		},
		"wfq/internal/filter": {
			"wfq/internal/render", "wfq/internal/cli",
			"wfq/internal/app", "wfq/cmd/",
		},
		"wfq/internal/render": {
			"wfq/internal/cli", "wfq/internal/app", "wfq/cmd/",
		},
		"wfq/internal/termwidth": {
			"wfq/internal/render", "wfq/internal/cli",
			"wfq/internal/app", "wfq/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "wfq/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "wfq/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
