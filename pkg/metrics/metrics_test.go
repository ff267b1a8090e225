package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/streamkit/internal/testutil"
	"github.com/vnykmshr/streamkit/pkg/stream"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(prometheus.NewRegistry())
}

func TestInstrumentCountsItemsAndEvaluations(t *testing.T) {
	reg := newTestRegistry(t)

	s := Instrument(reg, "numbers", stream.Range(1, 5))

	result, err := s.Collect()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2, 3, 4, 5})

	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamEvaluations.WithLabelValues("numbers")), 1.0)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamItems.WithLabelValues("numbers")), 5.0)
}

func TestInstrumentIsLazy(t *testing.T) {
	reg := newTestRegistry(t)

	s := Instrument(reg, "lazy", stream.Range(1, 100))

	// Wrapping alone moves no counters.
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamEvaluations.WithLabelValues("lazy")), 0.0)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamItems.WithLabelValues("lazy")), 0.0)

	// A short-circuiting terminal counts only the elements it pulled.
	found, err := stream.Contains(s, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, found, true)

	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamEvaluations.WithLabelValues("lazy")), 1.0)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamItems.WithLabelValues("lazy")), 3.0)
}

func TestInstrumentCountsEachTraversal(t *testing.T) {
	reg := newTestRegistry(t)

	s := Instrument(reg, "reused", stream.Range(1, 3))

	_, err := s.Collect()
	testutil.AssertNoError(t, err)
	_, err = s.Count()
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamEvaluations.WithLabelValues("reused")), 2.0)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamItems.WithLabelValues("reused")), 6.0)
}

func TestInstrumentPassesThroughErroredStream(t *testing.T) {
	reg := newTestRegistry(t)

	bad := stream.Range(1, 5).Take(-1)
	s := Instrument(reg, "bad", bad)

	_, err := s.Collect()
	testutil.AssertError(t, err)
	reg.ObserveResult("bad", err)

	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamErrors.WithLabelValues("bad")), 1.0)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamEvaluations.WithLabelValues("bad")), 0.0)
}

func TestObserveResultNilError(t *testing.T) {
	reg := newTestRegistry(t)

	reg.ObserveResult("ok", nil)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamErrors.WithLabelValues("ok")), 0.0)
}

func TestNewRegistryWithConfig(t *testing.T) {
	cfg := Config{
		Registry:  prometheus.NewRegistry(),
		Namespace: "custom",
		Labels:    prometheus.Labels{"env": "test"},
	}
	reg := NewRegistryWithConfig(cfg)

	reg.StreamItems.WithLabelValues("named").Add(2)
	testutil.AssertEqual(t,
		promtestutil.ToFloat64(reg.StreamItems.WithLabelValues("named")), 2.0)
}
