package object

import (
	"testing"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/draw/drawtest"
)

func testAsset(w, h float64) *asset.Asset {
	return &asset.Asset{
		Texture: &drawtest.Texture{Name: "test", W: int(w), H: int(h)},
		Width:   w,
		Height:  h,
	}
}

func TestSpriteDrawCentersOnPosition(t *testing.T) {
	a := testAsset(90, 128)
	s := NewSprite(a, draw.Point{X: 512, Y: 704})

	var rec drawtest.Recorder
	s.Draw(&rec, draw.Identity())

	if len(rec.Ops) != 1 || rec.Ops[0].Kind != drawtest.OpDrawImage {
		t.Fatalf("ops = %+v, want a single DrawImage", rec.Ops)
	}
	op := rec.Ops[0]
	if op.Texture != a.Texture {
		t.Error("sprite should draw its asset's texture")
	}
	if got, want := op.Origin(), (draw.Point{X: 467, Y: 640}); got != want {
		t.Errorf("origin = %+v, want %+v", got, want)
	}
}

func TestSpriteDrawComposesParentTransform(t *testing.T) {
	s := NewSprite(testAsset(10, 20), draw.Point{X: 5, Y: 10})

	var rec drawtest.Recorder
	s.Draw(&rec, draw.Identity().Translate(100, 200))

	if got, want := rec.Ops[0].Origin(), (draw.Point{X: 100, Y: 200}); got != want {
		t.Errorf("origin = %+v, want %+v", got, want)
	}
}

func TestSpritesShareAsset(t *testing.T) {
	a := testAsset(8, 8)
	s1 := NewSprite(a, draw.Point{X: 1, Y: 1})
	s2 := s1
	s2.Pos.X = 50

	if s1.Pos.X != 1 {
		t.Error("copying a sprite must not alias its position")
	}
	if s1.Asset != s2.Asset {
		t.Error("sprites should reference the same asset")
	}
}

func TestMoveAll(t *testing.T) {
	a := testAsset(8, 8)
	sprites := []Sprite{
		NewSprite(a, draw.Point{X: 0, Y: 10}),
		NewSprite(a, draw.Point{X: 5, Y: 20}),
	}

	MoveAll(sprites, 1, -4)

	if sprites[0].Pos != (draw.Point{X: 1, Y: 6}) || sprites[1].Pos != (draw.Point{X: 6, Y: 16}) {
		t.Errorf("positions = %+v, %+v", sprites[0].Pos, sprites[1].Pos)
	}
}

func TestKeepPreservesOrder(t *testing.T) {
	a := testAsset(8, 8)
	var sprites []Sprite
	for i := 0; i < 6; i++ {
		sprites = append(sprites, NewSprite(a, draw.Point{X: float64(i), Y: float64(i)}))
	}

	kept := Keep(sprites, func(s Sprite) bool { return int(s.Pos.X)%2 == 0 })

	if len(kept) != 3 {
		t.Fatalf("len = %d, want 3", len(kept))
	}
	for i, want := range []float64{0, 2, 4} {
		if kept[i].Pos.X != want {
			t.Errorf("kept[%d].X = %v, want %v", i, kept[i].Pos.X, want)
		}
	}
	if sprites[5].Asset != nil {
		t.Error("slots past the kept length should be cleared")
	}
}

func TestKeepEmpty(t *testing.T) {
	if got := Keep(nil, func(Sprite) bool { return true }); len(got) != 0 {
		t.Errorf("Keep(nil) = %v, want empty", got)
	}
}
