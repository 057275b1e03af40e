package testutils

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// CounterValue sums every series of the named counter family in g
func CounterValue(t *testing.T, g prometheus.Gatherer, name string) float64 {
	t.Helper()

	families, err := g.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	var sum float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}
