package mempool

import "sync"

// Storage holds a pool's spare values. Implementations must be safe for
// concurrent use; Pop returns false when no spare is available. LIFO
// implementations are preferred because the most recently released value
// is the most likely to still be warm in cache.
type Storage[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Len() int
}

// SpinStack is the default Storage: a LIFO slice of spares guarded by a
// SpinLock. The critical sections are a single append or slice truncation,
// short enough that spinning beats blocking in the common uncontended case.
type SpinStack[T any] struct {
	lock  SpinLock
	items []T
}

// NewSpinStack creates an empty spinlock-guarded stack.
func NewSpinStack[T any]() *SpinStack[T] {
	return &SpinStack[T]{}
}

// Push adds a spare value to the top of the stack.
func (s *SpinStack[T]) Push(v T) {
	s.lock.Lock()
	s.items = append(s.items, v)
	s.lock.Unlock()
}

// Pop removes and returns the most recently pushed value.
func (s *SpinStack[T]) Pop() (T, bool) {
	var zero T
	s.lock.Lock()
	n := len(s.items)
	if n == 0 {
		s.lock.Unlock()
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero // release the reference for GC
	s.items = s.items[:n-1]
	s.lock.Unlock()
	return v, true
}

// Len returns the current number of spares.
func (s *SpinStack[T]) Len() int {
	s.lock.Lock()
	n := len(s.items)
	s.lock.Unlock()
	return n
}

// MutexStack is a LIFO stack of spares guarded by a sync.Mutex. Under
// heavy contention the runtime parks waiters instead of letting them spin,
// which wastes less CPU than SpinStack at the cost of slower uncontended
// operations.
type MutexStack[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewMutexStack creates an empty mutex-guarded stack.
func NewMutexStack[T any]() *MutexStack[T] {
	return &MutexStack[T]{}
}

// Push adds a spare value to the top of the stack.
func (s *MutexStack[T]) Push(v T) {
	s.mu.Lock()
	s.items = append(s.items, v)
	s.mu.Unlock()
}

// Pop removes and returns the most recently pushed value.
func (s *MutexStack[T]) Pop() (T, bool) {
	var zero T
	s.mu.Lock()
	n := len(s.items)
	if n == 0 {
		s.mu.Unlock()
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	s.mu.Unlock()
	return v, true
}

// Len returns the current number of spares.
func (s *MutexStack[T]) Len() int {
	s.mu.Lock()
	n := len(s.items)
	s.mu.Unlock()
	return n
}
