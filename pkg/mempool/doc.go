// Package mempool implements a fast, thread-safe object pool for reusing
// expensive-to-construct values. It provides two pool designs with
// different lifecycle models, pluggable storage backends, and statistics
// for monitoring pool efficiency.
//
// # General Pool
//
// Pool[T] keeps a LIFO stack of spare values behind a lightweight lock.
// Get pops the most recently released spare (the one most likely still
// warm in cache) or, when the stack is empty, constructs a fresh value
// with the pool's factory. Either way the value arrives wrapped in a
// Guard that pushes it back exactly once:
//
//	pool := mempool.New(func() *Scratch { return &Scratch{} },
//	    mempool.WithReset(func(s *Scratch) { s.Reset() }))
//
//	g := pool.MustGet()
//	defer g.Release()
//	use(g.Value())
//
// For borrows that must survive panics in the using code, With runs a
// function against a pooled value and guarantees the return on every exit
// path:
//
//	err := pool.With(func(s *Scratch) error {
//	    return process(s)
//	})
//
// The pool never bounds its size with the default storage: it grows to
// hold as many spares as were concurrently checked out at peak, and after
// that steady state the factory is never invoked again.
//
// # Goroutine-Affine Pool
//
// AffinePool[T] is optimized for pools accessed overwhelmingly by one
// goroutine. The pool pre-builds a single value at construction; the
// first goroutine to call Get wins a one-time compare-and-swap and from
// then on receives that value after nothing more than an atomic load and
// an equality check. Every other goroutine falls back to a per-goroutine
// cached value held in a mutex-guarded map. There is nothing to release:
// the same pointer is returned on every call from a given goroutine, for
// as long as the pool lives.
//
//	pool := mempool.NewAffine(func() *Codec { return NewCodec() })
//	c := pool.MustGet() // stable for this goroutine
//
// Choose AffinePool when callers want a persistent per-goroutine value,
// and Pool when callers need exclusive-borrow-then-return semantics.
//
// # Storage Backends
//
// Pool storage is pluggable via WithStorage. The default SpinStack guards
// a slice with a spinlock, the cheapest option for the short push/pop
// critical sections involved. MutexStack trades uncontended speed for
// fairness under heavy contention, and the lockfree package contributes a
// Treiber stack and a bounded MPMC ring.
//
// # Failure Semantics
//
// The pool itself is infallible; only the factory can fail. NewFallible
// accepts a factory returning an error, and Get propagates that error to
// the caller with the pool left fully consistent. There is no internal
// retry.
//
// # Debugging
//
// SetDebug(true) makes every Get record its borrow call site; guards
// never released show up in LogNonReleased, and ObjectsInUse totals the
// in-flight values across all pools. Debug mode costs a stack capture
// per Get and is meant for leak investigations, not production.
package mempool
