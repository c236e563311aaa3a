// Package perf measures per-frame render latency for a previewed subject and
// derives rolling statistics over a bounded trailing window. One Sampler is
// owned per measured subject; all methods are meant to be called from the
// host's render loop thread and never block.
package perf

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// Clock abstracts wall-clock access so tests can drive deterministic timings.
type Clock interface {
	Now() time.Time
}

// RealtimeClock is the default Clock backed by time.Now.
type RealtimeClock struct{}

func (RealtimeClock) Now() time.Time { return time.Now() }

// Snapshot is the derived, immutable statistics value computed after each
// recorded sample. It is safe to hand to any number of consumers.
type Snapshot struct {
	Label string
	// Frame is the index whose render produced this snapshot; -1 before any
	// sample has been recorded.
	Frame int
	// AvgMs, MinMs and MaxMs are the mean and extrema over the window in
	// milliseconds. Empty-window state: AvgMs 0, MinMs +Inf, MaxMs 0.
	AvgMs float64
	MinMs float64
	MaxMs float64
	// FPS is 1000/AvgMs once at least two samples exist, else 0.
	FPS   float64
	Count int
	// ElapsedSeconds is wall-clock time since the sampler was created.
	ElapsedSeconds float64
	// RecentMs holds the trailing samples (at most RecentCount), oldest first.
	RecentMs []float64
	Rating   Rating
}

// Observer receives every new snapshot, synchronously, at most once per
// distinct frame index.
type Observer func(Snapshot)

// Sampler converts frame-advance signals plus wall-clock timings into a
// running Snapshot. Create a fresh Sampler whenever the measured subject
// changes identity; statistics must never carry over between subjects.
type Sampler struct {
	label    string
	observer Observer
	clock    Clock

	win       *window
	createdAt time.Time
	passStart time.Time
	lastFrame int
	primed    bool
	current   Snapshot
}

// NewSampler returns a Sampler using the realtime clock. observer may be nil.
func NewSampler(label string, observer Observer) *Sampler {
	return NewSamplerWithClock(label, observer, RealtimeClock{})
}

// NewSamplerWithClock allows injecting the clock for deterministic tests.
func NewSamplerWithClock(label string, observer Observer, clock Clock) *Sampler {
	s := &Sampler{
		label:    label,
		observer: observer,
		clock:    clock,
		win:      newWindow(),
	}
	s.createdAt = clock.Now()
	s.passStart = s.createdAt
	s.current = emptySnapshot(label)
	return s
}

func emptySnapshot(label string) Snapshot {
	return Snapshot{
		Label:  label,
		Frame:  -1,
		MinMs:  math.Inf(1),
		Rating: RatingExcellent,
	}
}

// BeginPass stamps the start of a render pass. Call it before the subject
// renders so a later CompletePass measures the render cost, not the cost of
// detection bookkeeping.
func (s *Sampler) BeginPass() {
	if s == nil {
		return
	}
	s.passStart = s.clock.Now()
}

// CompletePass performs frame-change detection for the pass begun by
// BeginPass. The first observed index primes the tracker without recording;
// an unchanged index is a same-frame re-render and records nothing. On a
// changed index the elapsed time since BeginPass becomes a new sample, the
// snapshot is recomputed and the observer (if any) is invoked. The returned
// bool reports whether a sample was recorded.
func (s *Sampler) CompletePass(frame int) (Snapshot, bool) {
	if s == nil {
		return Snapshot{}, false
	}
	if !s.primed {
		s.primed = true
		s.lastFrame = frame
		return s.current, false
	}
	if frame == s.lastFrame {
		return s.current, false
	}
	s.lastFrame = frame

	now := s.clock.Now()
	ms := float64(now.Sub(s.passStart)) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	s.win.push(ms)
	s.current = s.compute(frame, now)
	if s.observer != nil {
		s.observer(s.current)
	}
	return s.current, true
}

// Snapshot returns the current statistics. Before any sample is recorded this
// is the documented zero-state (count 0, min +Inf, max 0, fps 0, excellent).
func (s *Sampler) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return s.current
}

// Elapsed reports wall-clock time since the sampler was created.
func (s *Sampler) Elapsed() time.Duration {
	if s == nil {
		return 0
	}
	return s.clock.Now().Sub(s.createdAt)
}

func (s *Sampler) compute(frame int, now time.Time) Snapshot {
	values := s.win.values()
	snap := Snapshot{
		Label:          s.label,
		Frame:          frame,
		Count:          len(values),
		ElapsedSeconds: now.Sub(s.createdAt).Seconds(),
		RecentMs:       s.win.tail(RecentCount),
		MinMs:          math.Inf(1),
	}
	if len(values) == 0 {
		snap.Rating = Classify(0)
		return snap
	}
	// The stats package errors on empty input; len is guarded above, so any
	// error here would be a programming bug and the zero result is kept.
	snap.AvgMs, _ = stats.Mean(values)
	snap.MinMs, _ = stats.Min(values)
	snap.MaxMs, _ = stats.Max(values)
	if len(values) > 1 && snap.AvgMs > 0 {
		snap.FPS = 1000 / snap.AvgMs
	}
	snap.Rating = Classify(snap.AvgMs)
	return snap
}
