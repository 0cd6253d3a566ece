package shutdown

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignals derives a context cancelled on SIGINT/SIGTERM.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
