package mempool

import (
	"sync"
	"sync/atomic"

	"github.com/ajitpratap0/mempool/pkg/errors"
)

// AffinePool is an object pool optimized for access dominated by a single
// goroutine. One value is pre-built at construction and held in an owner
// slot; the first goroutine to call Get claims it with a one-time
// compare-and-swap and afterwards pays only an atomic load plus an
// equality check per access. All other goroutines receive their own
// lazily-constructed value from a mutex-guarded map keyed by goroutine ID.
//
// Unlike Pool, an AffinePool hands out persistent references tied to the
// calling goroutine: the same pointer is returned on every Get from that
// goroutine and there is nothing to release. The pool issues read access
// by contract; callers that mutate the value through the pointer from
// multiple call sites are responsible for their own coordination.
//
// An AffinePool must not be copied after first use.
type AffinePool[T any] struct {
	// owner holds the goroutine ID that won the fast path, or 0 while the
	// pool is unowned. The 0 -> id transition happens at most once and is
	// never reset.
	owner  atomic.Uint64
	local  *T
	create Factory[T]

	mu     sync.Mutex
	cached map[uint64]*T

	stats struct {
		constructed atomic.Int64
		gets        atomic.Int64
	}
}

// NewAffine creates a goroutine-affine pool with an infallible factory.
// The owner-slot value is built immediately.
func NewAffine[T any](create func() T) *AffinePool[T] {
	v := create()
	p := &AffinePool[T]{
		local: &v,
		create: func() (T, error) {
			return create(), nil
		},
		cached: make(map[uint64]*T),
	}
	p.stats.constructed.Store(1)
	return p
}

// NewAffineFallible creates a goroutine-affine pool whose factory can
// fail. The owner-slot value is built immediately, so construction itself
// reports the first failure.
func NewAffineFallible[T any](create Factory[T]) (*AffinePool[T], error) {
	v, err := create()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConstruction, "pool factory failed")
	}
	p := &AffinePool[T]{
		local:  &v,
		create: create,
		cached: make(map[uint64]*T),
	}
	p.stats.constructed.Store(1)
	return p, nil
}

// Get returns the calling goroutine's value, constructing it on first
// access from a non-owner goroutine. The returned pointer is stable for
// the life of the pool.
func (p *AffinePool[T]) Get() (*T, error) {
	p.stats.gets.Add(1)

	id := goroutineID()
	if p.owner.Load() == id {
		return p.local, nil
	}
	return p.getSlow(id)
}

// getSlow is the fallback path: the one-time owner election, then the
// per-goroutine cache. It is taken by every non-owner goroutine on every
// call; only the owner skips locking entirely.
func (p *AffinePool[T]) getSlow(id uint64) (*T, error) {
	if p.owner.Load() == 0 && p.owner.CompareAndSwap(0, id) {
		return p.local, nil
	}

	p.mu.Lock()
	if v, ok := p.cached[id]; ok {
		p.mu.Unlock()
		return v, nil
	}
	p.mu.Unlock()

	// Construct outside the lock so a slow factory never serializes other
	// goroutines' first accesses. The map is keyed by our own goroutine
	// ID, so no other goroutine can race this insert.
	v, err := p.create()
	if err != nil {
		// No entry was registered; the pool stays consistent and the next
		// Get from this goroutine retries construction.
		return nil, errors.Wrap(err, errors.ErrorTypeConstruction, "pool factory failed")
	}

	boxed := &v
	p.mu.Lock()
	p.cached[id] = boxed
	p.mu.Unlock()

	p.stats.constructed.Add(1)
	return boxed, nil
}

// MustGet is Get for pools built with an infallible factory; it panics if
// the factory returns an error.
func (p *AffinePool[T]) MustGet() *T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Stats returns a snapshot of the pool's counters. Every constructed value
// stays checked out for the life of the pool, so InUse mirrors
// Constructed and there are never spares.
func (p *AffinePool[T]) Stats() Stats {
	constructed := p.stats.constructed.Load()
	return Stats{
		Constructed: constructed,
		Gets:        p.stats.gets.Load(),
		InUse:       constructed,
	}
}
