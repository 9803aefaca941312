// Package lockfree provides lock-free storage backends for mempool pools
package lockfree

import (
	"runtime"
	"sync/atomic"
)

// node is a Treiber stack link.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack implements an unbounded lock-free LIFO stack (Treiber stack).
// LIFO order keeps the most recently released value at the top, matching
// the pool's preference for cache-warm spares. It satisfies
// mempool.Storage[T].
type Stack[T any] struct {
	top       atomic.Pointer[node[T]]
	_padding1 [7]uint64 //nolint:unused // separate top and length cache lines

	length atomic.Int64
}

// NewStack creates an empty lock-free stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds a value to the top of the stack.
// Safe for multiple concurrent producers.
func (s *Stack[T]) Push(v T) {
	n := &node[T]{value: v}
	for {
		old := s.top.Load()
		n.next = old
		if s.top.CompareAndSwap(old, n) {
			s.length.Add(1)
			return
		}

		// Another goroutine won the CAS, retry
		runtime.Gosched()
	}
}

// Pop removes and returns the most recently pushed value.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	for {
		old := s.top.Load()
		if old == nil {
			return zero, false
		}
		if s.top.CompareAndSwap(old, old.next) {
			s.length.Add(-1)
			return old.value, true
		}

		runtime.Gosched()
	}
}

// Len returns the current number of values in the stack.
// This is an approximation in concurrent scenarios.
func (s *Stack[T]) Len() int {
	return int(s.length.Load())
}
