// Package object holds the entities that populate the world: textured
// sprites and the starfield.
package object

import (
	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/draw"
)

// Sprite is a position paired with a texture it does not own.
// The registry keeps every asset alive for the whole process.
type Sprite struct {
	Pos   draw.Point
	Asset *asset.Asset
}

// NewSprite creates a sprite centered on pos.
func NewSprite(a *asset.Asset, pos draw.Point) Sprite {
	return Sprite{Pos: pos, Asset: a}
}

// Draw paints the sprite centered on its position.
func (s Sprite) Draw(dst draw.Surface, t draw.Transform) {
	t = t.Translate(s.Pos.X, s.Pos.Y).Translate(-s.Asset.Width/2, -s.Asset.Height/2)
	dst.DrawImage(s.Asset.Texture, t)
}

// MoveAll shifts every sprite by (dx, dy).
func MoveAll(sprites []Sprite, dx, dy float64) {
	for i := range sprites {
		sprites[i].Pos = sprites[i].Pos.Add(dx, dy)
	}
}

// Keep removes the sprites for which keep returns false, preserving the
// order of the rest. The backing array is reused.
func Keep(sprites []Sprite, keep func(Sprite) bool) []Sprite {
	kept := sprites[:0]
	for _, s := range sprites {
		if keep(s) {
			kept = append(kept, s)
		}
	}
	// Drop references to culled assets held past the new length
	clear(sprites[len(kept):])
	return kept
}
