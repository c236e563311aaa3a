package scenario

import (
	"image"
	"image/color"
	"math"
)

// bounce draws a ball reflecting off the frame edges. Cheap on purpose; it
// anchors the excellent end of the rating scale.
type bounce struct {
	base
	radius int
	speed  float64
	ball   color.RGBA
}

func newBounce(id, title string, opts Options, p Params) Scenario {
	return &bounce{
		base:   base{id: id, title: title, opts: opts},
		radius: int(p.get("radius", 24)),
		speed:  p.get("speed", 6),
		ball:   color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
	}
}

// triangleWave maps t onto a 0..span..0 bounce path.
func triangleWave(t float64, span float64) float64 {
	if span <= 0 {
		return 0
	}
	period := 2 * span
	m := math.Mod(t, period)
	if m < 0 {
		m += period
	}
	if m > span {
		return period - m
	}
	return m
}

func (s *bounce) RenderFrame(frame int) *image.RGBA {
	img := s.blank()
	w, h := s.opts.Width, s.opts.Height
	t := float64(frame) * s.speed
	cx := s.radius + int(triangleWave(t, float64(w-2*s.radius)))
	cy := s.radius + int(triangleWave(t*0.83, float64(h-2*s.radius)))
	r2 := s.radius * s.radius
	for y := cy - s.radius; y <= cy+s.radius; y++ {
		for x := cx - s.radius; x <= cx+s.radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 && x >= 0 && y >= 0 && x < w && y < h {
				img.SetRGBA(x, y, s.ball)
			}
		}
	}
	return img
}

// wave paints horizontal bands whose phase scrolls with the frame index.
type wave struct {
	base
	bands int
}

func newWave(id, title string, opts Options, p Params) Scenario {
	return &wave{base: base{id: id, title: title, opts: opts}, bands: int(p.get("bands", 24))}
}

func (s *wave) RenderFrame(frame int) *image.RGBA {
	img := s.blank()
	w, h := s.opts.Width, s.opts.Height
	if s.bands < 1 {
		s.bands = 1
	}
	bandH := h/s.bands + 1
	phase := float64(frame) * 0.12
	for i := 0; i < s.bands; i++ {
		v := 0.5 + 0.5*math.Sin(phase+float64(i)*0.45)
		c := color.RGBA{
			R: uint8(30 + 80*v),
			G: uint8(60 + 140*v),
			B: uint8(120 + 120*v),
			A: 0xff,
		}
		fillRect(img, image.Rect(0, i*bandH, w, (i+1)*bandH), c)
	}
	return img
}

// orbit draws count particles circling the center. The count parameter scales
// cost roughly linearly, which makes it handy for walking the rating bands.
type orbit struct {
	base
	count int
	size  int
}

func newOrbit(id, title string, opts Options, p Params) Scenario {
	return &orbit{
		base:  base{id: id, title: title, opts: opts},
		count: int(p.get("count", 400)),
		size:  int(p.get("size", 4)),
	}
}

func (s *orbit) RenderFrame(frame int) *image.RGBA {
	img := s.blank()
	w, h := s.opts.Width, s.opts.Height
	cx, cy := float64(w)/2, float64(h)/2
	maxR := math.Min(cx, cy) - float64(s.size)
	t := float64(frame) * 0.02
	for i := 0; i < s.count; i++ {
		fi := float64(i)
		radius := maxR * (0.15 + 0.85*math.Mod(fi*0.61803, 1))
		angle := t*(1+math.Mod(fi, 7)/3) + fi*2.399963
		x := int(cx + radius*math.Cos(angle))
		y := int(cy + radius*math.Sin(angle))
		hue := uint8(90 + 160*math.Mod(fi*0.137, 1))
		fillRect(img, image.Rect(x, y, x+s.size, y+s.size), color.RGBA{R: hue, G: uint8(255 - hue), B: 0xc8, A: 0xff})
	}
	return img
}

// plasma evaluates a trig field per pixel; deliberately heavy so the poor
// band is reachable on any machine by raising the scale parameter.
type plasma struct {
	base
	scale float64
}

func newPlasma(id, title string, opts Options, p Params) Scenario {
	return &plasma{base: base{id: id, title: title, opts: opts}, scale: p.get("scale", 0.05)}
}

func (s *plasma) RenderFrame(frame int) *image.RGBA {
	img := s.blank()
	w, h := s.opts.Width, s.opts.Height
	t := float64(frame) * 0.08
	for y := 0; y < h; y++ {
		fy := float64(y) * s.scale
		for x := 0; x < w; x++ {
			fx := float64(x) * s.scale
			v := math.Sin(fx+t) + math.Sin(fy+t/2) + math.Sin((fx+fy+t)/2)
			v += math.Sin(math.Sqrt(fx*fx+fy*fy) + t)
			v /= 4
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(128 + 127*math.Sin(v*math.Pi)),
				G: uint8(128 + 127*math.Sin(v*math.Pi+2*math.Pi/3)),
				B: uint8(128 + 127*math.Sin(v*math.Pi+4*math.Pi/3)),
				A: 0xff,
			})
		}
	}
	return img
}
