// Package window runs the game in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/input"
	"github.com/tomz197/asteriods/internal/loop"
	"github.com/tomz197/asteriods/internal/loop/config"
)

// InitError reports that the window or its graphics context could not be created.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("window init: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// errNotDecoded is returned when the file loader yields something that is
// not a decoded image.
var errNotDecoded = errors.New("texture is not a decoded image")

// TextureLoader decodes files with Files and uploads them to the GPU.
type TextureLoader struct {
	Files asset.Loader
}

// LoadTexture implements asset.Loader.
func (l TextureLoader) LoadTexture(path string) (draw.Texture, error) {
	tex, err := l.Files.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	img, ok := tex.(image.Image)
	if !ok {
		return nil, errNotDecoded
	}
	return ebiten.NewImageFromImage(img), nil
}

// Game adapts a loop.Driver to ebiten.Game.
type Game struct {
	driver *loop.Driver
	now    func() time.Time
	last   time.Time
	keys   []ebiten.Key // Scratch buffer for inpututil
	screen Screen
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game that drives d.
func NewGame(d *loop.Driver) *Game {
	return &Game{driver: d, now: time.Now}
}

// Update folds this tick's key presses, then releases, into the driver and
// advances it by the wall-clock time since the previous tick.
// Escape ends the game.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	pressed := len(g.keys)
	g.keys = inpututil.AppendJustReleasedKeys(g.keys)
	return g.step(g.now(), g.keys[:pressed], g.keys[pressed:])
}

func (g *Game) step(now time.Time, pressed, released []ebiten.Key) error {
	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		if key := MapKey(k); key != input.KeyUnknown {
			g.driver.KeyPress(key)
		}
	}
	for _, k := range released {
		if key := MapKey(k); key != input.KeyUnknown {
			g.driver.KeyRelease(key)
		}
	}

	// The first tick has no previous time to measure from
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.driver.Update(dt)
	return nil
}

// Draw renders the world onto the screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.dst = screen
	g.driver.Render(&g.screen)
	g.screen.dst = nil
}

// Layout keeps the logical screen at the world size regardless of the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.WorldWidth, config.WorldHeight
}

// MapKey translates an ebiten key into the game's logical key.
func MapKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return input.KeyLeft
	case ebiten.KeyArrowRight:
		return input.KeyRight
	case ebiten.KeyArrowUp:
		return input.KeyUp
	case ebiten.KeyArrowDown:
		return input.KeyDown
	case ebiten.KeySpace:
		return input.KeySpace
	case ebiten.KeyEnter:
		return input.KeyEnter
	case ebiten.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyUnknown
}

// Screen is a draw.Surface backed by an ebiten image.
type Screen struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

var _ draw.Surface = (*Screen)(nil)

// Clear fills the whole image with c.
func (s *Screen) Clear(c color.Color) {
	s.dst.Fill(c)
}

// FillRect fills r, placed by t, with c.
func (s *Screen) FillRect(c color.Color, r draw.Rect, t draw.Transform) {
	o := t.Apply(draw.Point{X: r.X, Y: r.Y})
	vector.DrawFilledRect(s.dst, float32(o.X), float32(o.Y), float32(r.W), float32(r.H), c, false)
}

// DrawImage draws tex at t with default blending. Textures not uploaded by
// TextureLoader are skipped.
func (s *Screen) DrawImage(tex draw.Texture, t draw.Transform) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(t.X, t.Y)
	s.dst.DrawImage(img, &s.op)
}

// Run opens the 1024x768 "Asteriods!" window on OpenGL and blocks until
// Escape is pressed or the window is closed.
func Run(d *loop.Driver) error {
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(config.WorldWidth, config.WorldHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	err := ebiten.RunGameWithOptions(NewGame(d), &ebiten.RunGameOptions{
		GraphicsLibrary: ebiten.GraphicsLibraryOpenGL,
	})
	if err != nil {
		return &InitError{Err: err}
	}
	return nil
}
