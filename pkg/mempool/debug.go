package mempool

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ajitpratap0/mempool/pkg/logger"
)

var (
	debugEnabled atomic.Bool

	trackMu sync.Mutex
	// borrowSites counts outstanding (not yet released) borrows per borrow
	// call site. Populated only in debug mode.
	borrowSites = map[string]int{}
	// inUseCounters reports the in-use count of every pool ever created,
	// for the process-wide ObjectsInUse total.
	inUseCounters []func() int64
)

// SetDebug switches debug mode. In debug mode every acquisition records
// its borrow call site so leaks can be traced back to the code that never
// released. Debug mode costs a stack capture per Get; use it for
// investigations, not steady-state production.
func SetDebug(on bool) {
	debugEnabled.Store(on)
}

// registerInUseCounter is called once per pool at construction.
func registerInUseCounter(fn func() int64) {
	trackMu.Lock()
	inUseCounters = append(inUseCounters, fn)
	trackMu.Unlock()
}

// ObjectsInUse returns the total number of values checked out of all
// general pools and not yet released. Useful as a leak check in tests.
func ObjectsInUse() int64 {
	trackMu.Lock()
	defer trackMu.Unlock()

	var total int64
	for _, fn := range inUseCounters {
		total += fn()
	}
	return total
}

// NonReleased returns the outstanding borrow count per borrow call site.
// Empty unless debug mode was enabled while the borrows happened.
func NonReleased() map[string]int {
	trackMu.Lock()
	defer trackMu.Unlock()

	out := make(map[string]int)
	for site, n := range borrowSites {
		if n > 0 {
			out[site] = n
		}
	}
	return out
}

// LogNonReleased logs one warning per borrow call site with outstanding
// values. A nil logger falls back to the package's global logger.
func LogNonReleased(log *zap.Logger) {
	if log == nil {
		log = logger.Get()
	}
	for site, n := range NonReleased() {
		log.Warn("pooled values borrowed but never released",
			zap.Int("outstanding", n),
			zap.String("borrowed_at", site),
		)
	}
}

// trackBorrow records the borrow call site of an acquisition and returns
// its key, or "" when debug mode is off.
func trackBorrow() string {
	if !debugEnabled.Load() {
		return ""
	}

	site := borrowStack()
	trackMu.Lock()
	borrowSites[site]++
	trackMu.Unlock()
	return site
}

// trackRelease balances trackBorrow when a guard is released.
func trackRelease(site string) {
	if site == "" {
		return
	}
	trackMu.Lock()
	borrowSites[site]--
	trackMu.Unlock()
}

// borrowStack formats the call stack above Pool.Get as the borrow-site key.
func borrowStack() string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(4, pc) // skip Callers, borrowStack, trackBorrow, Get
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte('\n')
		if !more {
			break
		}
	}
	return b.String()
}
