// Package drawtest provides a draw.Surface that records every call, for
// asserting what was drawn and in which order.
package drawtest

import (
	"image"
	"image/color"

	"github.com/tomz197/asteriods/internal/draw"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpDrawImage
)

// Op is one recorded call on a Recorder.
type Op struct {
	Kind      OpKind
	Color     color.Color  // Clear, FillRect
	Rect      draw.Rect    // FillRect
	Texture   draw.Texture // DrawImage
	Transform draw.Transform
}

// Origin returns the top-left corner the call drew at in surface coordinates.
func (o Op) Origin() draw.Point {
	return o.Transform.Apply(draw.Point{X: o.Rect.X, Y: o.Rect.Y})
}

// Recorder is a draw.Surface that keeps every call in order.
type Recorder struct {
	Ops []Op
}

var _ draw.Surface = (*Recorder)(nil)

// Clear records a clear.
func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(c color.Color, rect draw.Rect, t draw.Transform) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Color: c, Rect: rect, Transform: t})
}

// DrawImage records an image draw.
func (r *Recorder) DrawImage(tex draw.Texture, t draw.Transform) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawImage, Texture: tex, Transform: t})
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texture is a texture handle with a fixed size and no pixels.
type Texture struct {
	Name string
	W, H int
}

// Bounds implements draw.Texture.
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.W, t.H)
}
