package mempool

import "sync/atomic"

// Guard wraps a value checked out of a Pool together with a reference to
// the owning pool. A value held by a live guard is never reachable from
// the pool's storage and never observed by another guard: each value has
// exactly one active borrower.
//
// Guards are created only by Pool.Get. A guard keeps its pool alive and
// may be moved to another goroutine before release.
type Guard[T any] struct {
	pool     *Pool[T]
	value    T
	site     string
	released atomic.Bool
}

// Value returns the borrowed value. After Release it returns the zero
// value of T.
func (g *Guard[T]) Value() T {
	return g.value
}

// Release returns the value to the pool. The first call consumes the
// guard's value slot; subsequent calls are no-ops, so the explicit path
// and a deferred call compose without ever double-returning a value.
func (g *Guard[T]) Release() {
	if !g.released.CompareAndSwap(false, true) {
		return
	}

	trackRelease(g.site)

	v := g.value
	var zero T
	g.value = zero
	g.pool.put(v)
}

// Released reports whether the guard's value has been returned to the pool.
func (g *Guard[T]) Released() bool {
	return g.released.Load()
}
