package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
)

// ClearScreen clears the terminal screen and moves cursor to top-left
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h")
}

// SetupSignalHandler returns a context cancelled on interrupt or SIGTERM
func SetupSignalHandler(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Watcher redraws a full-screen view at a fixed interval
type Watcher struct {
	Out      io.Writer
	Errs     io.Writer
	Interval time.Duration
	Clock    clockwork.Clock
}

// NewWatcher creates a watcher writing to stdout
func NewWatcher(interval time.Duration) *Watcher {
	return &Watcher{
		Out:      os.Stdout,
		Errs:     os.Stderr,
		Interval: interval,
		Clock:    clockwork.NewRealClock(),
	}
}

// Run renders until ctx is done. Render errors are printed and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, render func(ctx context.Context, out io.Writer) error) error {
	clock := w.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	ticker := clock.NewTicker(w.Interval)
	defer ticker.Stop()

	HideCursor(w.Out)
	defer ShowCursor(w.Out)

	for {
		ClearScreen(w.Out)
		_, _ = fmt.Fprintf(w.Out, "Last update: %s | Next refresh in %s | Press Ctrl+C to exit\n\n",
			clock.Now().Format("15:04:05"), w.Interval)

		if err := render(ctx, w.Out); err != nil && ctx.Err() == nil {
			errs := w.Errs
			if errs == nil {
				errs = w.Out
			}
			_, _ = fmt.Fprintf(errs, "Error: %v\n", err)
		}

		select {
		case <-ticker.Chan():
		case <-ctx.Done():
			ClearScreen(w.Out)
			_, _ = fmt.Fprintln(w.Out, "Watch mode ended.")
			return nil
		}
	}
}
