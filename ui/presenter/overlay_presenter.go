package presenter

import (
	"image"

	"github.com/revid-ai/framepulse/domain/perf"
	"github.com/revid-ai/framepulse/ui/overlay"
)

// OverlayPresenter applies the current overlay options to a rendered frame.
// The drawing itself is the pure overlay.Render; the presenter only owns the
// user-adjustable options (visibility, corner, label).
type OverlayPresenter struct {
	opts overlay.Options
}

func NewOverlayPresenter(opts overlay.Options) *OverlayPresenter {
	return &OverlayPresenter{opts: opts}
}

// Apply draws the snapshot panel onto frame according to the current options.
func (p *OverlayPresenter) Apply(frame *image.RGBA, snap perf.Snapshot) {
	if p == nil {
		return
	}
	overlay.Render(frame, snap, p.opts)
}

// ToggleVisible flips the visibility flag and returns the new value.
func (p *OverlayPresenter) ToggleVisible() bool {
	if p == nil {
		return false
	}
	p.opts.Visible = !p.opts.Visible
	return p.opts.Visible
}

// SetPosition re-docks the panel; spelling per overlay.Corners.
func (p *OverlayPresenter) SetPosition(name string) {
	if p == nil {
		return
	}
	p.opts.Position = overlay.ParseCorner(name)
}

// SetLabel overrides the panel label (empty falls back to the snapshot's).
func (p *OverlayPresenter) SetLabel(label string) {
	if p == nil {
		return
	}
	p.opts.Label = label
}

// Options returns the active options.
func (p *OverlayPresenter) Options() overlay.Options {
	if p == nil {
		return overlay.Options{}
	}
	return p.opts
}
