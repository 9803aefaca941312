// Package mempool provides a fast, thread-safe object pool for reusing
// expensive-to-construct values across goroutines with minimal
// synchronization cost.
//
// A pool takes a factory function for creating members of the pool. Once
// created, values can be acquired immediately; when a value is released it
// returns to the pool for reuse instead of being garbage collected. On hot
// paths where a fixed working set of objects is acquired and released at
// high frequency (parser buffers, scratch structures, codec state), this
// eliminates per-iteration allocation and initialization overhead.
//
// # Architecture
//
// Two pool designs cover the common lifecycle models:
//
// 1. General pool (mempool.Pool[T]): a LIFO stack of spare values behind a
// lightweight spinlock. Acquire pops a spare or constructs a fresh value,
// wrapped in a Guard that returns it to the pool exactly once. Storage is
// pluggable: spinlock stack (default), mutex stack, or the lock-free
// backends in pkg/lockfree.
//
// 2. Goroutine-affine pool (mempool.AffinePool[T]): optimized for the case
// where one goroutine dominates access. The first goroutine to touch the
// pool wins a one-time race for a pre-built value and pays only an atomic
// load per access afterwards; every other goroutine gets its own cached
// value from a mutex-guarded map. Affine pools hand out persistent
// per-goroutine references with nothing to release.
//
// # Key Packages
//
//	pkg/mempool    - Pool, AffinePool, Guard, spinlock, storage backends
//	pkg/lockfree   - Treiber stack and bounded MPMC ring storage
//	pkg/metrics    - Prometheus and OpenTelemetry export of pool statistics
//	pkg/errors     - Structured error handling
//	pkg/logger     - Structured logging (zap)
//
// # Quick Start
//
//	pool := mempool.New(func() *bytes.Buffer {
//	    return bytes.NewBuffer(make([]byte, 0, 4096))
//	}, mempool.WithReset(func(b *bytes.Buffer) { b.Reset() }))
//
//	g := pool.MustGet()
//	defer g.Release()
//	g.Value().WriteString("hello")
package mempool
