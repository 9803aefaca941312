package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ajitpratap0/mempool/pkg/mempool"
)

// RegisterWithMeter registers observable gauges for one pool on an
// OpenTelemetry meter. The pool is observed on every metric collection;
// no publish tick is needed. The returned registration can be
// unregistered to stop observing the pool.
func RegisterWithMeter(meter metric.Meter, name string, s mempool.Statser) (metric.Registration, error) {
	constructed, err := meter.Int64ObservableGauge("mempool.constructed",
		metric.WithDescription("Total number of values built by the pool factory"))
	if err != nil {
		return nil, err
	}

	gets, err := meter.Int64ObservableGauge("mempool.gets",
		metric.WithDescription("Total number of acquisitions from the pool"))
	if err != nil {
		return nil, err
	}

	puts, err := meter.Int64ObservableGauge("mempool.puts",
		metric.WithDescription("Total number of values returned to the pool"))
	if err != nil {
		return nil, err
	}

	inUse, err := meter.Int64ObservableGauge("mempool.in_use",
		metric.WithDescription("Number of values currently checked out of the pool"))
	if err != nil {
		return nil, err
	}

	spares, err := meter.Int64ObservableGauge("mempool.spares",
		metric.WithDescription("Number of idle values held in pool storage"))
	if err != nil {
		return nil, err
	}

	attrs := metric.WithAttributes(attribute.String("pool", name))

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		st := s.Stats()
		o.ObserveInt64(constructed, st.Constructed, attrs)
		o.ObserveInt64(gets, st.Gets, attrs)
		o.ObserveInt64(puts, st.Puts, attrs)
		o.ObserveInt64(inUse, st.InUse, attrs)
		o.ObserveInt64(spares, st.Spares, attrs)
		return nil
	}, constructed, gets, puts, inUse, spares)
}
