// Package overlay draws the performance panel straight into a frame image.
// Rendering is a pure function of (snapshot, options); drawing the same
// inputs twice produces identical pixels, so re-renders are idempotent and
// the package needs no state and no Tk.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/revid-ai/framepulse/domain/perf"
)

// Corner selects which corner of the frame the panel docks to.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// ParseCorner maps the config spelling to a Corner; unknown values fall back
// to top-right, the least content-obscuring default.
func ParseCorner(s string) Corner {
	switch s {
	case "top-left":
		return TopLeft
	case "top-right":
		return TopRight
	case "bottom-left":
		return BottomLeft
	case "bottom-right":
		return BottomRight
	default:
		return TopRight
	}
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "top-right"
	}
}

// Corners lists the valid config spellings in display order.
func Corners() []string {
	return []string{"top-left", "top-right", "bottom-left", "bottom-right"}
}

// Options parameterizes a render. Visible false short-circuits all drawing.
type Options struct {
	Visible  bool
	Position Corner
	Label    string
}

// SparkCapMs is the render time that fills a sparkline bar to full height.
const SparkCapMs = 20.0

// Panel geometry.
const (
	panelW     = 172
	padX       = 8
	padY       = 6
	rowH       = 14
	sparkH     = 26
	sparkBarW  = 12
	sparkGap   = 3
	margin     = 8
	headerRows = 1
	statRows   = 4
)

var (
	panelBg    = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xd2}
	textColor  = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	mutedColor = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}

	greenColor = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	amberColor = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	orange     = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	redColor   = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// RatingColor returns the draw color for a rating band.
func RatingColor(r perf.Rating) color.RGBA {
	switch r {
	case perf.RatingExcellent:
		return greenColor
	case perf.RatingGood:
		return amberColor
	case perf.RatingAcceptable:
		return orange
	default:
		return redColor
	}
}

// FPSColor colors an estimated frame rate: green at 60+, amber at 30+, red
// below.
func FPSColor(fps float64) color.RGBA {
	switch {
	case fps >= perf.FPSGreenMin:
		return greenColor
	case fps >= perf.FPSAmberMin:
		return amberColor
	default:
		return redColor
	}
}

// Render draws the panel for snap onto dst according to opts. With
// opts.Visible false dst is left untouched.
func Render(dst *image.RGBA, snap perf.Snapshot, opts Options) {
	if dst == nil || !opts.Visible {
		return
	}
	h := panelHeight()
	origin := panelOrigin(dst.Bounds(), opts.Position, panelW, h)
	panel := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(panelW, h))}
	draw.Draw(dst, panel.Intersect(dst.Bounds()), image.NewUniform(panelBg), image.Point{}, draw.Over)

	x := origin.X + padX
	y := origin.Y + padY + 10 // baseline of the first text row

	label := opts.Label
	if label == "" {
		label = snap.Label
	}
	if label == "" {
		label = "perf"
	}
	drawString(dst, x, y, label, textColor)
	badge := snap.Rating.String()
	drawString(dst, origin.X+panelW-padX-textWidth(badge), y, badge, RatingColor(snap.Rating))
	y += rowH + 2

	drawStat(dst, x, y, "frame", fmt.Sprintf("%d", snap.Frame))
	y += rowH
	drawStatColored(dst, x, y, "avg", fmtMs(snap.AvgMs), RatingColor(snap.Rating))
	y += rowH
	drawStat(dst, x, y, "min/max", fmtMs(snap.MinMs)+" / "+fmtMs(snap.MaxMs))
	y += rowH
	drawStatColored(dst, x, y, "fps", fmt.Sprintf("%.1f", snap.FPS), FPSColor(snap.FPS))
	y += rowH
	drawStat(dst, x, y, "samples", fmt.Sprintf("%d", snap.Count))
	y += 4

	drawSparkline(dst, image.Rect(x, y, origin.X+panelW-padX, y+sparkH), snap.RecentMs)
}

func panelHeight() int {
	return padY*2 + (headerRows+statRows+1)*rowH + 6 + sparkH
}

func panelOrigin(bounds image.Rectangle, c Corner, w, h int) image.Point {
	switch c {
	case TopLeft:
		return bounds.Min.Add(image.Pt(margin, margin))
	case TopRight:
		return image.Pt(bounds.Max.X-margin-w, bounds.Min.Y+margin)
	case BottomLeft:
		return image.Pt(bounds.Min.X+margin, bounds.Max.Y-margin-h)
	default:
		return image.Pt(bounds.Max.X-margin-w, bounds.Max.Y-margin-h)
	}
}

func fmtMs(ms float64) string {
	if math.IsInf(ms, 1) {
		return "-"
	}
	return fmt.Sprintf("%.2fms", ms)
}

func drawStat(dst *image.RGBA, x, y int, name, value string) {
	drawStatColored(dst, x, y, name, value, textColor)
}

func drawStatColored(dst *image.RGBA, x, y int, name, value string, c color.RGBA) {
	drawString(dst, x, y, name, mutedColor)
	drawString(dst, x+64, y, value, c)
}

func drawString(dst *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// drawSparkline renders the trailing samples as bars anchored to the bottom
// of r. Bar height is proportional to render time, saturating at SparkCapMs;
// each bar takes the rating color of its own sample.
func drawSparkline(dst *image.RGBA, r image.Rectangle, samples []float64) {
	x := r.Min.X
	for _, ms := range samples {
		frac := ms / SparkCapMs
		if frac > 1 {
			frac = 1
		}
		if frac < 0 {
			frac = 0
		}
		barH := int(frac*float64(r.Dy()-2)) + 2 // min 2px so zero-cost samples stay visible
		bar := image.Rect(x, r.Max.Y-barH, x+sparkBarW, r.Max.Y)
		draw.Draw(dst, bar.Intersect(dst.Bounds()), image.NewUniform(RatingColor(perf.Classify(ms))), image.Point{}, draw.Src)
		x += sparkBarW + sparkGap
		if x >= r.Max.X {
			break
		}
	}
}
