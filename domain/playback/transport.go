// Package playback provides a tick-driven frame clock for the preview
// harness. The transport never runs its own goroutine; the UI update loop
// calls Advance with the current time and receives the frame index to render.
package playback

import "time"

// Params configures a transport run.
type Params struct {
	// FrameRate is the playback rate in frames per second.
	FrameRate float64
	// DurationInFrames is the timeline length; frame indices run
	// [0, DurationInFrames).
	DurationInFrames int
	// Autoplay starts the transport playing immediately.
	Autoplay bool
	// Loop wraps back to frame 0 at the end instead of pausing on the last
	// frame.
	Loop bool
}

// Transport converts wall-clock progress into a frame index. It is used from
// a single goroutine (the Tk event loop); no locking.
type Transport struct {
	params  Params
	playing bool
	// anchorFrame/anchorTime mark where playback (re)started; the current
	// frame is derived from the elapsed time since the anchor.
	anchorFrame float64
	anchorTime  time.Time
	frame       int
}

// NewTransport returns a transport positioned at frame 0. now anchors
// autoplay; pass the same clock source used for later Advance calls.
func NewTransport(params Params, now time.Time) *Transport {
	if params.FrameRate <= 0 {
		params.FrameRate = 30
	}
	if params.DurationInFrames <= 0 {
		params.DurationInFrames = 1
	}
	t := &Transport{params: params}
	t.anchorTime = now
	if params.Autoplay {
		t.playing = true
	}
	return t
}

// Params returns the configured playback parameters.
func (t *Transport) Params() Params { return t.params }

// Playing reports whether the transport is advancing.
func (t *Transport) Playing() bool { return t != nil && t.playing }

// Frame returns the frame index computed by the last Advance (or Seek).
func (t *Transport) Frame() int {
	if t == nil {
		return 0
	}
	return t.frame
}

// Play resumes from the current frame.
func (t *Transport) Play(now time.Time) {
	if t == nil || t.playing {
		return
	}
	t.anchorFrame = float64(t.frame)
	t.anchorTime = now
	t.playing = true
}

// Pause freezes the transport on the current frame.
func (t *Transport) Pause() {
	if t == nil {
		return
	}
	t.playing = false
}

// Toggle flips between playing and paused.
func (t *Transport) Toggle(now time.Time) {
	if t == nil {
		return
	}
	if t.playing {
		t.Pause()
		return
	}
	t.Play(now)
}

// Seek jumps to the given frame, clamped to the timeline, without changing
// the play/pause state.
func (t *Transport) Seek(frame int, now time.Time) {
	if t == nil {
		return
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= t.params.DurationInFrames {
		frame = t.params.DurationInFrames - 1
	}
	t.frame = frame
	t.anchorFrame = float64(frame)
	t.anchorTime = now
}

// Restart rewinds to frame 0 and starts playing.
func (t *Transport) Restart(now time.Time) {
	if t == nil {
		return
	}
	t.frame = 0
	t.anchorFrame = 0
	t.anchorTime = now
	t.playing = true
}

// SetLoop switches end-of-timeline behaviour.
func (t *Transport) SetLoop(loop bool) {
	if t == nil {
		return
	}
	t.params.Loop = loop
}

// Advance computes the frame for now and returns it. While paused it returns
// the held frame. At the end of the timeline a looping transport wraps to 0;
// otherwise it clamps to the final frame and pauses.
func (t *Transport) Advance(now time.Time) int {
	if t == nil {
		return 0
	}
	if !t.playing {
		return t.frame
	}
	elapsed := now.Sub(t.anchorTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	pos := t.anchorFrame + elapsed*t.params.FrameRate
	total := t.params.DurationInFrames
	if int(pos) >= total {
		if t.params.Loop {
			t.frame = int(pos) % total
			return t.frame
		}
		t.frame = total - 1
		t.playing = false
		return t.frame
	}
	t.frame = int(pos)
	return t.frame
}
