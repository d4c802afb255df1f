// Package draw holds the drawing primitives the game renders through and
// the half-block terminal canvas that implements them.
package draw

import (
	"image"
	"image/color"
)

// Point represents a 2D coordinate in world pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle relative to a Transform.
type Rect struct {
	X, Y, W, H float64
}

// Transform is a 2D translation. Rotation and scaling are never applied by
// the game, so only the offset is carried.
type Transform struct {
	X, Y float64
}

// Identity returns the transform that leaves coordinates unchanged.
func Identity() Transform {
	return Transform{}
}

// Translate returns t followed by a translation of (dx, dy).
func (t Transform) Translate(dx, dy float64) Transform {
	return Transform{X: t.X + dx, Y: t.Y + dy}
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{X: p.X + t.X, Y: p.Y + t.Y}
}

// Texture is an opaque image handle owned by the host.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is the set of drawing primitives a host provides to the game.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillRect fills r, placed by t, with c.
	FillRect(c color.Color, r Rect, t Transform)
	// DrawImage draws tex with its top-left corner at t, unscaled and fully opaque.
	DrawImage(tex Texture, t Transform)
}

// Colors used by the game.
var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	StarColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// luminance returns the perceived brightness of c premultiplied by its
// alpha, in [0, 1].
func luminance(c color.Color) float64 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	// RGBA() is alpha-premultiplied, so the weighted sum already includes alpha.
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}
