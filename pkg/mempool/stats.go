package mempool

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// Stats is a point-in-time snapshot of a pool's counters.
type Stats struct {
	// Constructed is the total number of values built by the factory.
	Constructed int64 `json:"constructed"`
	// Gets is the total number of acquisitions.
	Gets int64 `json:"gets"`
	// Puts is the total number of values returned to storage.
	Puts int64 `json:"puts"`
	// InUse is the number of values currently checked out.
	InUse int64 `json:"in_use"`
	// Spares is the number of idle values held in storage.
	Spares int64 `json:"spares"`
}

// Statser is implemented by both pool designs and by anything else that
// can report pool-shaped statistics, such as the metrics exporters'
// sources.
type Statser interface {
	Stats() Stats
}

// WriteStats encodes a snapshot of the given pools as JSON, keyed by pool
// name. Useful for debug endpoints and test assertions.
func WriteStats(w io.Writer, pools map[string]Statser) error {
	snapshot := make(map[string]Stats, len(pools))
	for name, p := range pools {
		snapshot[name] = p.Stats()
	}

	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(snapshot)
}
