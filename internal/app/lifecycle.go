package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle creates a context that is canceled either when the run
// timeout expires or when SIGINT or SIGTERM is received, whichever happens
// first. Interrupting a sweep discards it; there is no partial-result
// recovery, so cancellation only needs to stop the workers promptly.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration for the run.
//
// Returns:
//   - context.Context: A context with both timeout and signal handling.
//   - *CancelFuncs: The cancel functions for cleanup (defer Cleanup).
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, &CancelFuncs{
		cancelTimeout: cancelTimeout,
		stopSignals:   stopSignals,
	}
}

// CancelFuncs holds the cancel functions for lifecycle management.
type CancelFuncs struct {
	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// Cleanup calls both cancel functions to release resources.
func (c *CancelFuncs) Cleanup() {
	if c.stopSignals != nil {
		c.stopSignals()
	}
	if c.cancelTimeout != nil {
		c.cancelTimeout()
	}
}
