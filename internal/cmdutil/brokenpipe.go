// internal/cmdutil/brokenpipe.go
package cmdutil

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Search mode is built to feed fzf, which closes its end on selection,
// so this counts as a successful run rather than an output failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
