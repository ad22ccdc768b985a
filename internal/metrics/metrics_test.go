package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOrder(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.ObserveOrder(OutcomeCreated, 3, 10*time.Millisecond)
	m.ObserveOrder(OutcomeSeatTaken, 1, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersTotal.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersTotal.WithLabelValues(OutcomeSeatTaken)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TicketsBooked))
}

func TestObserveOrder_NilRegistry(t *testing.T) {
	var m *MetricsRegistry
	assert.NotPanics(t, func() { m.ObserveOrder(OutcomeCreated, 1, time.Millisecond) })
}
