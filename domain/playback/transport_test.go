package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(base time.Time, ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

func TestTransportAutoplayAdvances(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTransport(Params{FrameRate: 30, DurationInFrames: 90, Autoplay: true}, base)

	assert.Equal(t, 0, tr.Advance(base))
	assert.Equal(t, 15, tr.Advance(at(base, 500)))
	assert.Equal(t, 30, tr.Advance(at(base, 1000)))
	assert.True(t, tr.Playing())
}

func TestTransportPauseHoldsFrame(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTransport(Params{FrameRate: 30, DurationInFrames: 90, Autoplay: true}, base)

	tr.Advance(at(base, 1000))
	tr.Pause()
	assert.Equal(t, 30, tr.Advance(at(base, 5000)), "paused transport holds its frame")

	tr.Play(at(base, 5000))
	assert.Equal(t, 45, tr.Advance(at(base, 5500)), "resume continues from held frame")
}

func TestTransportClampsAndPausesAtEnd(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTransport(Params{FrameRate: 30, DurationInFrames: 60, Autoplay: true}, base)

	assert.Equal(t, 59, tr.Advance(at(base, 10000)))
	assert.False(t, tr.Playing(), "non-looping transport pauses at the last frame")
	assert.Equal(t, 59, tr.Advance(at(base, 20000)))
}

func TestTransportLoopWraps(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTransport(Params{FrameRate: 30, DurationInFrames: 60, Autoplay: true, Loop: true}, base)

	// 2.5s at 30fps = frame 75 -> wraps to 15.
	assert.Equal(t, 15, tr.Advance(at(base, 2500)))
	assert.True(t, tr.Playing())
}

func TestTransportSeekAndRestart(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTransport(Params{FrameRate: 30, DurationInFrames: 60}, base)

	assert.False(t, tr.Playing(), "no autoplay starts paused")
	tr.Seek(200, base)
	assert.Equal(t, 59, tr.Frame(), "seek clamps to timeline")
	tr.Seek(-5, base)
	assert.Equal(t, 0, tr.Frame())

	tr.Seek(20, base)
	tr.Restart(at(base, 1000))
	assert.True(t, tr.Playing())
	assert.Equal(t, 0, tr.Frame())
	assert.Equal(t, 30, tr.Advance(at(base, 2000)))
}

func TestTransportDefaults(t *testing.T) {
	tr := NewTransport(Params{}, time.Unix(0, 0))
	p := tr.Params()
	assert.Equal(t, 30.0, p.FrameRate)
	assert.Equal(t, 1, p.DurationInFrames)
}
