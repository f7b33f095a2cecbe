// internal/item/load.go
package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed marks input that is not a valid item batch. Any load
// failure wraps it; callers branch with errors.Is.
var ErrMalformed = errors.New("malformed item input")

// Load reads the whole stream and decodes a JSON array of items in source
// order. Every record must carry a non-empty name and uniqueName; the
// first violation aborts the load with no partial result. Cancellation
// via ctx is honored between reads, so a signal interrupts a stalled
// stdin producer.
func Load(ctx context.Context, r io.Reader) ([]Item, error) {
	var data []byte
	buf := make([]byte, 64*1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("%w: item %d missing name", ErrMalformed, i)
		}
		if it.UniqueName == "" {
			return nil, fmt.Errorf("%w: item %d (%s) missing uniqueName", ErrMalformed, i, it.Name)
		}
	}
	return items, nil
}
