package model

import (
	"math"
	"testing"

	"github.com/revid-ai/framepulse/domain/perf"
)

func TestMetricsModel_SetLatestReset(t *testing.T) {
	m := NewMetricsModel()
	if _, ok := m.Latest(); ok {
		t.Fatalf("fresh model should report no snapshot")
	}

	m.Set(perf.Snapshot{Label: "a", Frame: 7, AvgMs: 5, Count: 3})
	snap, ok := m.Latest()
	if !ok || snap.Frame != 7 || snap.Count != 3 {
		t.Fatalf("latest mismatch: ok=%v snap=%+v", ok, snap)
	}

	m.Reset("b")
	snap, ok = m.Latest()
	if ok {
		t.Fatalf("reset model should report no snapshot")
	}
	if snap.Label != "b" || snap.Count != 0 || !math.IsInf(snap.MinMs, 1) {
		t.Fatalf("reset zero-state mismatch: %+v", snap)
	}
}

func TestMetricsModel_NilSafe(t *testing.T) {
	var m *MetricsModel
	m.Set(perf.Snapshot{})
	m.Reset("x")
	if _, ok := m.Latest(); ok {
		t.Fatalf("nil model should report no snapshot")
	}
}
