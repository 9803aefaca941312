package mempool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinLockMutualExclusion(t *testing.T) {
	const (
		goroutines = 8
		iterations = 10000
	)

	var lock SpinLock
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*iterations, counter)
}

func TestSpinLockTryLock(t *testing.T) {
	var lock SpinLock

	assert.True(t, lock.TryLock())
	assert.False(t, lock.TryLock(), "TryLock must fail while held")

	lock.Unlock()
	assert.True(t, lock.TryLock())
	lock.Unlock()
}
