package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistryNilRegisterer(t *testing.T) {
	r := NewRegistry(nil)

	// Unregistered metrics must still collect.
	r.SavesTotal.WithLabelValues("ok").Inc()
	r.SaveTimeoutsTotal.Inc()
	r.LoadFallbacksTotal.Add(2)
	r.IndexedSnapshots.Set(5)

	if got := testutil.ToFloat64(r.SavesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("saves_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.LoadFallbacksTotal); got != 2 {
		t.Errorf("load_fallbacks_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.IndexedSnapshots); got != 5 {
		t.Errorf("indexed_snapshots = %v, want 5", got)
	}
}

func TestNewRegistryRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.SavesTotal.WithLabelValues("error").Inc()
	r.LoadsTotal.WithLabelValues("hit").Inc()
	r.SaveDuration.Observe(0.1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"snapstore_snapshot_saves_total",
		"snapstore_snapshot_loads_total",
		"snapstore_snapshot_save_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("metric %s not gathered", want)
		}
	}
}
