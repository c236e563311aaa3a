package view

import (
	"image"

	"github.com/revid-ai/framepulse/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Stage displays the rendered (overlay-composited) frame for the current
// scenario.
type Stage interface {
	UpdateFrame(img image.Image)
	Reset()
}

type stage struct {
	frameLabel *LabelWidget
	maxW       int
	maxH       int
	prevPhoto  *Img // previous Tk photo, disposed before replacement
}

// NewStage creates the frame label at the given grid row spanning the full
// width. maxW/maxH bound the on-screen size; larger frames are scaled down
// for display only.
func NewStage(row, maxW, maxH int) Stage {
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &stage{frameLabel: lbl, maxW: maxW, maxH: maxH, prevPhoto: photo}
}

func (v *stage) UpdateFrame(img image.Image) {
	if v == nil || v.frameLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, v.maxW, v.maxH)
	pngBytes := images.EncodePNG(scaled)
	if len(pngBytes) == 0 {
		return
	}
	// Dispose the previous photo so Tk does not accumulate obsolete pixel
	// buffers at playback rate.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.frameLabel.Configure(Image(photo))
}

func (v *stage) Reset() {
	if v == nil || v.frameLabel == nil {
		return
	}
	v.UpdateFrame(image.NewRGBA(image.Rect(0, 0, 320, 180)))
}
