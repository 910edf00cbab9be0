package app

import (
	"context"
	"os/signal"
	"syscall"
)

// SetupSignals creates a context that is canceled when the application
// receives SIGINT (Ctrl+C) or SIGTERM. This enables graceful interruption
// of a running batch and graceful shutdown of the server mode.
//
// Parameters:
//   - ctx: The parent context.
//
// Returns:
//   - context.Context: A new context canceled on signal receipt.
//   - context.CancelFunc: A function to stop listening for signals
//     (should be deferred).
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
