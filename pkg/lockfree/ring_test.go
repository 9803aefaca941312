package lockfree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingFIFO(t *testing.T) {
	r := NewRing[int](8)
	assert.Equal(t, 8, r.Cap())

	_, ok := r.Pop()
	assert.False(t, ok, "empty ring must report no value")

	for i := 0; i < 5; i++ {
		assert.True(t, r.TryPush(i))
	}
	assert.Equal(t, 5, r.Len())

	for i := 0; i < 5; i++ {
		v, ok := r.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok = r.Pop()
	assert.False(t, ok)
}

func TestRingCapacityRounding(t *testing.T) {
	assert.Equal(t, 8, NewRing[int](5).Cap())
	assert.Equal(t, 16, NewRing[int](16).Cap())
	assert.Equal(t, 1, NewRing[int](1).Cap())
}

func TestRingTryPushFull(t *testing.T) {
	r := NewRing[int](4)

	for i := 0; i < 4; i++ {
		assert.True(t, r.TryPush(i))
	}
	assert.False(t, r.TryPush(99), "push into a full ring must fail")

	// Draining one slot makes room again.
	v, ok := r.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, r.TryPush(99))
}

func TestRingPushDropsOnOverflow(t *testing.T) {
	r := NewRing[int](2)

	r.Push(1)
	r.Push(2)
	r.Push(3) // dropped
	assert.Equal(t, 2, r.Len())

	v, _ := r.Pop()
	assert.Equal(t, 1, v)
	v, _ = r.Pop()
	assert.Equal(t, 2, v)
	_, ok := r.Pop()
	assert.False(t, ok, "the overflowing value must not appear")
}

func TestRingConcurrentConservation(t *testing.T) {
	const (
		workers   = 8
		perWorker = 5000
	)

	r := NewRing[int](workers * perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.True(t, r.TryPush(base+i))
			}
		}(w * perWorker)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, r.Len())

	var mu sync.Mutex
	seen := make(map[int]bool, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, ok := r.Pop()
				if !ok {
					return
				}
				mu.Lock()
				assert.False(t, seen[v], "value %d popped twice", v)
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
