package lockfree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack[int]()

	_, ok := s.Pop()
	assert.False(t, ok, "empty stack must report no value")

	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	assert.Equal(t, 5, s.Len())

	for i := 4; i >= 0; i-- {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStackConcurrentConservation(t *testing.T) {
	const (
		producers = 8
		perWorker = 5000
	)

	s := NewStack[int]()

	var wg sync.WaitGroup
	for w := 0; w < producers; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Push(base + i)
			}
		}(w * perWorker)
	}
	wg.Wait()

	assert.Equal(t, producers*perWorker, s.Len())

	// Concurrent consumers must drain every value exactly once.
	var mu sync.Mutex
	seen := make(map[int]bool, producers*perWorker)
	for w := 0; w < producers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, ok := s.Pop()
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

	assert.Len(t, seen, producers*perWorker)
	assert.Zero(t, s.Len())
}

func TestStackMixedPushPop(t *testing.T) {
	const workers = 4

	s := NewStack[int]()

	var wg sync.WaitGroup
	var popped sync.Map
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Push(base + i)
				if v, ok := s.Pop(); ok {
					popped.Store(v, true)
				}
			}
		}(w * 1000)
	}
	wg.Wait()

	// Every push is matched by a pop in this pattern, so the stack ends
	// balanced or near-empty; nothing may be lost or duplicated.
	remaining := 0
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		_, dup := popped.Load(v)
		assert.False(t, dup, "value %d both popped and left behind", v)
		remaining++
	}
	total := remaining
	popped.Range(func(_, _ any) bool {
		total++
		return true
	})
	assert.Equal(t, workers*1000, total)
}
