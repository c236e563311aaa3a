package perf

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told, making sample durations exact.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) advanceMs(ms float64) {
	c.advance(time.Duration(ms * float64(time.Millisecond)))
}

// renderFrame simulates one render pass costing costMs before the sampler
// observes the given frame index.
func renderFrame(s *Sampler, c *fakeClock, frame int, costMs float64) (Snapshot, bool) {
	s.BeginPass()
	c.advanceMs(costMs)
	return s.CompletePass(frame)
}

func TestSamplerZeroState(t *testing.T) {
	s := NewSamplerWithClock("zero", nil, newFakeClock())
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Count)
	assert.Equal(t, -1, snap.Frame)
	assert.True(t, math.IsInf(snap.MinMs, 1), "empty window min is +Inf")
	assert.Equal(t, 0.0, snap.MaxMs)
	assert.Equal(t, 0.0, snap.AvgMs)
	assert.Equal(t, 0.0, snap.FPS)
	assert.Equal(t, RatingExcellent, snap.Rating)
	assert.Empty(t, snap.RecentMs)
}

func TestSamplerFirstPassPrimesWithoutSampling(t *testing.T) {
	c := newFakeClock()
	var calls int
	s := NewSamplerWithClock("prime", func(Snapshot) { calls++ }, c)

	_, sampled := renderFrame(s, c, 0, 5)
	assert.False(t, sampled, "first observed index primes only")
	assert.Equal(t, 0, s.Snapshot().Count)
	assert.Zero(t, calls)
}

func TestSamplerIgnoresSameFrameReRenders(t *testing.T) {
	c := newFakeClock()
	var calls int
	s := NewSamplerWithClock("rerender", func(Snapshot) { calls++ }, c)

	renderFrame(s, c, 3, 1)
	for i := 0; i < 5; i++ {
		_, sampled := renderFrame(s, c, 3, 50)
		assert.False(t, sampled)
	}
	assert.Equal(t, 0, s.Snapshot().Count)
	assert.Zero(t, calls)

	_, sampled := renderFrame(s, c, 4, 5)
	assert.True(t, sampled)
	assert.Equal(t, 1, calls, "observer fires once per distinct frame")
}

func TestSamplerWindowCapacityFIFO(t *testing.T) {
	c := newFakeClock()
	s := NewSamplerWithClock("window", nil, c)

	renderFrame(s, c, 0, 0)
	// 150 distinct frame changes with strictly increasing costs 1..150ms.
	for i := 1; i <= 150; i++ {
		renderFrame(s, c, i, float64(i))
	}
	snap := s.Snapshot()
	require.Equal(t, WindowCapacity, snap.Count)

	// Oldest 50 evicted: window holds costs 51..150 in order, so min/max and
	// the trailing slice pin both the bound and the FIFO order.
	assert.Equal(t, 51.0, snap.MinMs)
	assert.Equal(t, 150.0, snap.MaxMs)
	require.Len(t, snap.RecentMs, RecentCount)
	for i, v := range snap.RecentMs {
		assert.Equal(t, float64(141+i), v)
	}
}

func TestSamplerRecentIsTrailingSlice(t *testing.T) {
	c := newFakeClock()
	s := NewSamplerWithClock("recent", nil, c)

	renderFrame(s, c, 0, 0)
	for i := 1; i <= 4; i++ {
		renderFrame(s, c, i, float64(i))
	}
	snap := s.Snapshot()
	assert.Equal(t, 4, snap.Count)
	assert.Equal(t, []float64{1, 2, 3, 4}, snap.RecentMs, "shorter window returns all samples")

	for i := 5; i <= 30; i++ {
		renderFrame(s, c, i, float64(i))
	}
	snap = s.Snapshot()
	require.Len(t, snap.RecentMs, RecentCount)
	assert.Equal(t, []float64{21, 22, 23, 24, 25, 26, 27, 28, 29, 30}, snap.RecentMs)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		avgMs float64
		want  Rating
	}{
		{0, RatingExcellent},
		{3.999, RatingExcellent},
		{4.0, RatingGood},
		{7.999, RatingGood},
		{8.0, RatingAcceptable},
		{16.669, RatingAcceptable},
		{16.67, RatingPoor},
		{100, RatingPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.avgMs), "avg %v ms", tc.avgMs)
	}
}

func TestSamplerFrameRateGuard(t *testing.T) {
	c := newFakeClock()
	s := NewSamplerWithClock("fps", nil, c)

	renderFrame(s, c, 0, 0)
	snap, _ := renderFrame(s, c, 1, 10)
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, 0.0, snap.FPS, "single sample yields no rate estimate")

	snap, _ = renderFrame(s, c, 2, 10)
	assert.Equal(t, 2, snap.Count)
	assert.InDelta(t, 10.0, snap.AvgMs, 1e-9)
	assert.InDelta(t, 100.0, snap.FPS, 1e-9)
}

func TestSamplerEndToEndSequence(t *testing.T) {
	c := newFakeClock()
	var seen []Snapshot
	s := NewSamplerWithClock("demo", func(snap Snapshot) { seen = append(seen, snap) }, c)

	// Frame sequence [0,0,1,1,2]; only the 0->1 and 1->2 transitions are
	// measured, costing 5ms and 15ms.
	renderFrame(s, c, 0, 1)
	renderFrame(s, c, 0, 1)
	renderFrame(s, c, 1, 5)
	renderFrame(s, c, 1, 9)
	renderFrame(s, c, 2, 15)

	require.Len(t, seen, 2)
	final := s.Snapshot()
	assert.Equal(t, 2, final.Count)
	assert.InDelta(t, 10.0, final.AvgMs, 1e-9)
	assert.Equal(t, 5.0, final.MinMs)
	assert.Equal(t, 15.0, final.MaxMs)
	assert.Equal(t, RatingAcceptable, final.Rating, "10ms sits in [8,16.67)")
	assert.Equal(t, 2, final.Frame)
}

func TestSamplerSnapshotOrderingAndElapsed(t *testing.T) {
	c := newFakeClock()
	var frames []int
	s := NewSamplerWithClock("order", func(snap Snapshot) { frames = append(frames, snap.Frame) }, c)

	renderFrame(s, c, 0, 0)
	for i := 1; i <= 6; i++ {
		renderFrame(s, c, i, 2)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, frames, "snapshots arrive in frame order")

	snap := s.Snapshot()
	assert.InDelta(t, c.t.Sub(time.Unix(1000, 0)).Seconds(), snap.ElapsedSeconds, 1e-9)
	assert.Greater(t, snap.ElapsedSeconds, 0.0)
}

func TestSamplerZeroCostSamples(t *testing.T) {
	c := newFakeClock()
	s := NewSamplerWithClock("zerocost", nil, c)

	renderFrame(s, c, 0, 0)
	snap, sampled := renderFrame(s, c, 1, 0)
	assert.True(t, sampled, "zero-duration sample still records")
	assert.Equal(t, 0.0, snap.MinMs)
	assert.Equal(t, 0.0, snap.AvgMs)
	assert.Equal(t, RatingExcellent, snap.Rating)
}
