package lockfree

import (
	"runtime"
	"sync/atomic"
)

// ringSlot is a ring cell with a sequence number for ordering. The
// sequence protocol makes the plain value field safe: a consumer only
// reads value after observing the sequence a producer stored behind it.
type ringSlot[T any] struct {
	sequence atomic.Uint64
	value    T
}

// Ring implements a bounded lock-free multi-producer multi-consumer ring
// using per-slot sequence numbers and cache-line padding to avoid false
// sharing. As a pool storage backend it bounds the number of retained
// spares: pushes into a full ring drop the value and let the garbage
// collector have it. It satisfies mempool.Storage[T].
type Ring[T any] struct {
	buffer   []ringSlot[T]
	capacity uint64
	mask     uint64

	// Separate enqueue and dequeue indices on different cache lines
	enqueuePos atomic.Uint64
	_padding1  [7]uint64 //nolint:unused

	dequeuePos atomic.Uint64
	_padding2  [7]uint64 //nolint:unused
}

// NewRing creates a bounded MPMC ring with the given capacity.
// Capacity will be rounded up to the next power of 2 for efficient masking.
func NewRing[T any](capacity int) *Ring[T] {
	// Round up to next power of 2
	cap := uint64(1)
	for cap < uint64(capacity) {
		cap <<= 1
	}

	r := &Ring[T]{
		buffer:   make([]ringSlot[T], cap),
		capacity: cap,
		mask:     cap - 1,
	}

	// Initialize sequence numbers
	for i := uint64(0); i < cap; i++ {
		r.buffer[i].sequence.Store(i)
	}

	return r
}

// TryPush adds a value to the ring.
// Returns false if the ring is full.
func (r *Ring[T]) TryPush(v T) bool {
	for {
		pos := r.enqueuePos.Load()
		slot := &r.buffer[pos&r.mask]
		seq := slot.sequence.Load()

		diff := int64(seq) - int64(pos)

		if diff == 0 {
			// Slot is ready for enqueue
			if r.enqueuePos.CompareAndSwap(pos, pos+1) {
				// We own this slot
				slot.value = v
				slot.sequence.Store(pos + 1)
				return true
			}
		} else if diff < 0 {
			// Ring is full
			return false
		}

		// Slot not ready yet, retry
		runtime.Gosched()
	}
}

// Push adds a value to the ring, dropping it when the ring is full. This
// is the Storage contract: a bounded backend retains at most its capacity
// in spares and overflow is reclaimed by the garbage collector.
func (r *Ring[T]) Push(v T) {
	_ = r.TryPush(v)
}

// Pop removes and returns a value from the ring.
// Returns false if the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	for {
		pos := r.dequeuePos.Load()
		slot := &r.buffer[pos&r.mask]
		seq := slot.sequence.Load()

		diff := int64(seq) - int64(pos+1)

		if diff == 0 {
			// Slot is ready for dequeue
			if r.dequeuePos.CompareAndSwap(pos, pos+1) {
				// We own this slot
				v := slot.value
				slot.value = zero
				slot.sequence.Store(pos + r.capacity)
				return v, true
			}
		} else if diff < 0 {
			// Ring is empty
			return zero, false
		}

		// Slot not ready yet, retry
		runtime.Gosched()
	}
}

// Len returns the current number of values in the ring.
// This is an approximation in concurrent scenarios.
func (r *Ring[T]) Len() int {
	enq := r.enqueuePos.Load()
	deq := r.dequeuePos.Load()
	if enq < deq {
		return 0
	}
	return int(enq - deq)
}

// Cap returns the ring's capacity after power-of-2 rounding.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}
