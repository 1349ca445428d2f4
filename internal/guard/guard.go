// Package guard provides the single-flight primitive that serializes
// user-triggered fetches.
//
// A Guard wraps an operation so that re-entrant calls while one is
// outstanding are silently dropped: not queued, not run concurrently, and
// not reported as errors. The flag is global to the Guard, not keyed per
// target, so a second selection attempted mid-flight is dropped entirely.
// That drop-don't-queue behavior is part of the interaction contract.
package guard

import "sync/atomic"

// Guard is a non-reentrant gate around an asynchronous operation. The zero
// value is ready to use and starts available.
type Guard struct {
	busy atomic.Bool
}

// TryAcquire atomically claims the guard. It returns false, without
// blocking, when an operation is already in flight.
func (g *Guard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release makes the guard available again. It must be called exactly once
// per successful TryAcquire, regardless of whether the guarded operation
// succeeded.
func (g *Guard) Release() {
	g.busy.Store(false)
}

// Do runs fn while holding the guard and reports whether it ran. When the
// guard is busy, fn is not invoked and Do returns false immediately.
func (g *Guard) Do(fn func()) bool {
	if !g.TryAcquire() {
		return false
	}
	defer g.Release()
	fn()
	return true
}
