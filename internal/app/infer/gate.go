package infer

import (
	"context"
)

// Gate bounds how many transcriptions run at once. Inference is CPU/GPU
// bound, so concurrent requests queue here instead of contending for the
// shared engine.
type Gate struct {
	slots chan struct{}
}

// NewGate creates a gate admitting at most n concurrent transcriptions.
func NewGate(n int) *Gate {
	if n < 1 {
		n = 1
	}
	return &Gate{slots: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or the context is done.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot acquired with Acquire.
func (g *Gate) Release() {
	<-g.slots
}

// Capacity returns the configured slot count.
func (g *Gate) Capacity() int {
	return cap(g.slots)
}
