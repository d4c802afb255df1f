package object

import (
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/loop/config"
)

// Random is a uniform source in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Starfield is a fixed set of single-pixel stars scrolling down the screen.
type Starfield [config.StarCount]draw.Point

// NewStarfield scatters the stars uniformly over a w x h area.
func NewStarfield(rng Random, w, h float64) Starfield {
	var f Starfield
	for i := range f {
		f[i] = draw.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
	}
	return f
}

// Scroll moves every star down by dy. A star that passes below h reappears
// at the top of the same slot with a fresh random x.
func (f *Starfield) Scroll(dy, w, h float64, rng Random) {
	for i := range f {
		f[i].Y += dy
		if f[i].Y > h {
			f[i] = draw.Point{X: rng.Float64() * w, Y: 0}
		}
	}
}

// Draw paints each star as a 1x1 rectangle at its position, uncentered.
func (f *Starfield) Draw(dst draw.Surface, t draw.Transform) {
	for _, s := range f {
		dst.FillRect(draw.StarColor, draw.Rect{X: s.X, Y: s.Y, W: 1, H: 1}, t)
	}
}
