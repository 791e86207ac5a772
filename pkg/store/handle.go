package store

import (
	"context"
	"sync"
)

// Handle is the process-wide slot holding the current store driver. The
// driver can be rebound at runtime (the /api/connect path) while search
// requests are in flight.
//
// Acquire takes a read lock that the caller holds for the duration of its
// request, so a concurrent Swap waits for every checked-out driver to be
// released before replacing and closing the old one. In-flight requests
// always see a fully-bound driver, never a torn connection.
type Handle struct {
	mu  sync.RWMutex
	drv Driver
}

// NewHandle creates a Handle bound to the given driver.
func NewHandle(drv Driver) *Handle {
	return &Handle{drv: drv}
}

// Acquire checks out the current driver. The returned release function must
// be called when the caller is done with it, typically via defer.
func (h *Handle) Acquire() (Driver, func()) {
	h.mu.RLock()
	return h.drv, h.mu.RUnlock
}

// Swap rebinds the handle to a new driver, waiting for all checked-out
// drivers to be released first, then closes the old driver. Rebinding is a
// rare, exclusive operation.
func (h *Handle) Swap(ctx context.Context, drv Driver) error {
	h.mu.Lock()
	old := h.drv
	h.drv = drv
	h.mu.Unlock()

	if old == nil {
		return nil
	}
	return old.Close(ctx)
}

// Close closes the currently bound driver.
func (h *Handle) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.drv == nil {
		return nil
	}
	return h.drv.Close(ctx)
}
