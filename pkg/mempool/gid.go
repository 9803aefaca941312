package mempool

import "runtime"

// goroutineID returns the runtime's ID for the calling goroutine, parsed
// from the first line of its stack header ("goroutine 123 [running]:").
//
// Goroutine IDs are process-wide, monotonically increasing, nonzero, and
// never reused, which is exactly the identity contract the affine pool's
// owner slot needs: 0 stays free as the "unowned" sentinel. The parse
// touches only a fixed 64-byte buffer; there is no per-goroutine cache
// because Go offers no goroutine-local storage to memoize into.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	const prefix = len("goroutine ")
	if n <= prefix {
		return 0
	}

	var id uint64
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
