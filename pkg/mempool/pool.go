package mempool

import (
	"sync/atomic"

	"github.com/ajitpratap0/mempool/pkg/errors"
)

// Factory constructs a new pool member. It must be safe for concurrent
// invocation: multiple goroutines can reach the construct-new branch at the
// same time, and the pool never holds a lock while the factory runs.
type Factory[T any] func() (T, error)

// Pool is a thread-safe object pool with exclusive-borrow-then-return
// semantics. Get hands out values wrapped in a Guard; releasing the guard
// pushes the value back into the pool's storage for reuse.
//
// A Pool must not be copied after first use.
type Pool[T any] struct {
	storage Storage[T]
	create  Factory[T]
	reset   func(T)

	stats struct {
		constructed atomic.Int64
		gets        atomic.Int64
		puts        atomic.Int64
		inUse       atomic.Int64
	}
}

// Option configures a Pool.
type Option[T any] func(*Pool[T])

// WithStorage replaces the default spinlock stack with another backend,
// such as a MutexStack or one of the lockfree package's structures.
func WithStorage[T any](s Storage[T]) Option[T] {
	return func(p *Pool[T]) {
		p.storage = s
	}
}

// WithReset installs a cleanup function called on every value before it
// re-enters storage, so reused values never leak state from the previous
// borrower.
func WithReset[T any](reset func(T)) Option[T] {
	return func(p *Pool[T]) {
		p.reset = reset
	}
}

// New creates a pool with an infallible factory.
//
// Example:
//
//	pool := mempool.New(
//	    func() *Buffer { return &Buffer{data: make([]byte, 0, 1024)} },
//	    mempool.WithReset(func(b *Buffer) { b.data = b.data[:0] }),
//	)
func New[T any](create func() T, opts ...Option[T]) *Pool[T] {
	return NewFallible(func() (T, error) {
		return create(), nil
	}, opts...)
}

// NewFallible creates a pool whose factory can fail. A factory error
// propagates from Get; the pool has no fallback construction strategy and
// no internal retry, so retrying is the caller's decision.
func NewFallible[T any](create Factory[T], opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		storage: NewSpinStack[T](),
		create:  create,
	}
	for _, opt := range opts {
		opt(p)
	}
	registerInUseCounter(p.stats.inUse.Load)
	return p
}

// Get acquires a value from the pool. It pops the most recently released
// spare if one exists; otherwise it invokes the factory. Construction
// always happens outside the storage lock, so a slow factory never blocks
// concurrent acquisitions or releases.
//
// The returned guard holds the value exclusively until Release.
func (p *Pool[T]) Get() (*Guard[T], error) {
	p.stats.gets.Add(1)

	v, ok := p.storage.Pop()
	if !ok {
		var err error
		v, err = p.create()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConstruction, "pool factory failed")
		}
		p.stats.constructed.Add(1)
	}

	p.stats.inUse.Add(1)
	return &Guard[T]{pool: p, value: v, site: trackBorrow()}, nil
}

// MustGet is Get for pools built with an infallible factory; it panics if
// the factory returns an error.
func (p *Pool[T]) MustGet() *Guard[T] {
	g, err := p.Get()
	if err != nil {
		panic(err)
	}
	return g
}

// With acquires a value, runs fn against it, and returns the value to the
// pool on every exit path out of fn, including panic unwinding. It returns
// the factory error if acquisition fails, otherwise fn's error.
func (p *Pool[T]) With(fn func(T) error) error {
	g, err := p.Get()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g.Value())
}

// put returns a value to storage. Called only by Guard.Release, which
// guarantees it runs at most once per borrowed value.
func (p *Pool[T]) put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.stats.puts.Add(1)
	p.stats.inUse.Add(-1)
	p.storage.Push(v)
}

// Len returns the current number of spare values held in storage.
func (p *Pool[T]) Len() int {
	return p.storage.Len()
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Constructed: p.stats.constructed.Load(),
		Gets:        p.stats.gets.Load(),
		Puts:        p.stats.puts.Load(),
		InUse:       p.stats.inUse.Load(),
		Spares:      int64(p.storage.Len()),
	}
}
