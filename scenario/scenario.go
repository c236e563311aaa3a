// Package scenario provides the catalog of demo subjects the preview harness
// can measure. Every scenario renders a frame deterministically from its
// index (the screen mirror being the deliberate exception), so render cost is
// the only thing that varies between passes.
package scenario

import (
	"image"
	"image/color"
	"image/draw"
)

// Scenario is one measurable animated subject.
type Scenario interface {
	ID() string
	Title() string
	// RenderFrame draws the given frame into a pooled RGBA buffer. Callers
	// own the returned image and should hand it to RecycleFrame once the
	// pixels have been consumed.
	RenderFrame(frame int) *image.RGBA
}

// Options carries the harness-level render parameters shared by all
// scenarios.
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Params holds per-scenario numeric tuning knobs from the manifest.
type Params map[string]float64

// get returns the named parameter or fallback when absent.
func (p Params) get(key string, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// base carries the fields every built-in scenario shares.
type base struct {
	id    string
	title string
	opts  Options
}

func (b base) ID() string    { return b.id }
func (b base) Title() string { return b.title }

// blank acquires a pooled frame and fills it with the background color.
func (b base) blank() *image.RGBA {
	img := acquireFrame(image.Rect(0, 0, b.opts.Width, b.opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{b.opts.Background}, image.Point{}, draw.Src)
	return img
}

// fillRect fills r clipped to img with c.
func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}
