package model

import (
	"math"

	"github.com/revid-ai/framepulse/domain/perf"
)

// MetricsModel retains the most recent performance snapshot for the summary
// panel. Updates happen on the UI thread tick only; no synchronization. The
// zero value is an empty model and usable.
type MetricsModel struct {
	snap perf.Snapshot
	has  bool
}

func NewMetricsModel() *MetricsModel { return &MetricsModel{} }

// Set stores the latest snapshot.
func (m *MetricsModel) Set(snap perf.Snapshot) {
	if m == nil {
		return
	}
	m.snap = snap
	m.has = true
}

// Latest returns the retained snapshot and whether one has arrived since the
// last Reset.
func (m *MetricsModel) Latest() (perf.Snapshot, bool) {
	if m == nil {
		return perf.Snapshot{}, false
	}
	return m.snap, m.has
}

// Reset drops retained metrics; called when the measured subject changes so
// statistics never carry over between scenarios.
func (m *MetricsModel) Reset(label string) {
	if m == nil {
		return
	}
	m.snap = perf.Snapshot{Label: label, Frame: -1, MinMs: math.Inf(1), Rating: perf.RatingExcellent}
	m.has = false
}
