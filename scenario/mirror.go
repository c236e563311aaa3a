package scenario

import (
	"image"
	"log/slog"

	"github.com/vova616/screenshot"
)

// mirror grabs the live screen each frame and letterboxes it into the stage.
// It is the one non-deterministic scenario: its render cost tracks real
// capture latency, which makes it a useful stress subject for the overlay.
type mirror struct {
	base
	logger  *slog.Logger
	errOnce bool
	grab    func() (*image.RGBA, error)
}

func newMirror(id, title string, opts Options, logger *slog.Logger) Scenario {
	return &mirror{base: base{id: id, title: title, opts: opts}, logger: logger, grab: screenshot.CaptureScreen}
}

func (s *mirror) RenderFrame(frame int) *image.RGBA {
	img := s.blank()
	shot, err := s.grab()
	if err != nil || shot == nil {
		// Capture can fail on headless or locked sessions; fall back to the
		// plain background and log only the first failure.
		if err != nil && !s.errOnce {
			if s.logger != nil {
				s.logger.Error("screen capture", "error", err)
			}
			s.errOnce = true
		}
		return img
	}
	drawScaled(img, shot)
	return img
}

// drawScaled nearest-neighbour scales src into dst preserving aspect ratio,
// centered.
func drawScaled(dst *image.RGBA, src *image.RGBA) {
	sb := src.Bounds()
	db := dst.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	dw, dh := db.Dx(), db.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	ratio := float64(dw) / float64(sw)
	if r := float64(dh) / float64(sh); r < ratio {
		ratio = r
	}
	outW := int(float64(sw) * ratio)
	outH := int(float64(sh) * ratio)
	offX := (dw - outW) / 2
	offY := (dh - outH) / 2
	for y := 0; y < outH; y++ {
		sy := sb.Min.Y + int(float64(y)/ratio)
		for x := 0; x < outW; x++ {
			sx := sb.Min.X + int(float64(x)/ratio)
			dst.SetRGBA(db.Min.X+offX+x, db.Min.Y+offY+y, src.RGBAAt(sx, sy))
		}
	}
}
