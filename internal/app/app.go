// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"wfq/internal/cli"
	"wfq/internal/cmdutil"
	"wfq/internal/filter"
	"wfq/internal/item"
	"wfq/internal/render"
	"wfq/internal/termwidth"
	"wfq/internal/version"
)

// Exit codes: 0 success (including silent gated runs and a downstream
// broken pipe), 1 malformed input, 2 usage, 3 output I/O failure.
const (
	exitOK        = 0
	exitBadInput  = 1
	exitUsage     = 2
	exitWriteFail = 3
)

// RunContext executes the whole load→filter→render pipeline once.
// Cancellation is honored inside the load and at stage boundaries; a
// canceled run exits cleanly and appshell normalizes the code to 130.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	log := cmdutil.NewLogger(stderr)
	defer func() { _ = log.Sync() }()

	opts, err := cli.ParseArgs(argv)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		cli.Usage(outw)
		_ = outw.Flush()
		return exitUsage
	}
	if opts.Help {
		cli.Usage(outw)
		return flushed(outw, stderr)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "wfq version %s\n", version.Version)
		return flushed(outw, stderr)
	}

	items, err := item.Load(ctx, stdin)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return exitOK
		}
		log.Error("load items", zap.Error(err))
		return exitBadInput
	}

	if opts.Relic {
		if opts.RelicTagRaw != "" {
			log.Warn("unrecognized relic tag; matching any relic era",
				zap.String("tag", opts.RelicTagRaw))
		}
		items = filter.ByRelic(items, opts.RelicTag)
	}
	items = filter.BySearch(items, opts.Search)

	if !opts.LogItems || ctx.Err() != nil {
		return exitOK
	}

	width := opts.Width
	if width <= 0 {
		width = termwidth.Detect(stdout)
	}
	err = render.Write(opts.Format, outw, items, render.Params{
		Width:     width,
		RelicMode: opts.Relic,
	})
	if err == nil {
		err = outw.Flush()
	}
	if cmdutil.IsBrokenPipe(err) {
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWriteFail
	}
	return exitOK
}

// flushed drains the buffered writer, normalizing broken-pipe to success.
func flushed(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWriteFail
	}
	return exitOK
}

// Run is RunContext with a background context, the form tests use.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
