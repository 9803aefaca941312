package mempool

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a busy-wait mutual exclusion lock built on a single atomic
// boolean. It is intended only for very short critical sections (a slice
// push or pop) where the context-switch path of a blocking mutex would
// dominate the cost of the work done under the lock.
//
// SpinLock makes no fairness guarantee, has no timeout, and is not
// reentrant: a goroutine calling Lock while already holding it deadlocks.
// The zero value is an unlocked SpinLock.
type SpinLock struct {
	locked atomic.Bool
}

// Lock spins until the lock is acquired. Between acquisition attempts it
// spins on a plain load so the failed path stays read-only, and yields the
// processor to keep a single-CPU scheduler from livelocking.
func (l *SpinLock) Lock() {
	for !l.locked.CompareAndSwap(false, true) {
		for l.locked.Load() {
			runtime.Gosched()
		}
	}
}

// TryLock attempts to acquire the lock without spinning.
// It returns true if the lock was acquired.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwap(false, true)
}

// Unlock releases the lock. It must only be called by the holder.
func (l *SpinLock) Unlock() {
	l.locked.Store(false)
}
