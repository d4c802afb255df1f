// Package asset loads the game's textures once at startup and hands out
// immutable, shared references to them.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // lutetia.jpg
	_ "image/png"  // spaceship.png, beam.png
	"os"

	"github.com/tomz197/asteriods/internal/draw"
)

// ErrEmptyImage is returned for textures with a zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// LoadError reports an asset that is missing, unreadable or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Asset is a texture together with its native pixel size.
// It is never modified after Load returns.
type Asset struct {
	Texture draw.Texture
	Width   float64
	Height  float64
}

// Loader turns a file path into a host texture.
type Loader interface {
	LoadTexture(path string) (draw.Texture, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (draw.Texture, error)

// LoadTexture calls f(path).
func (f LoaderFunc) LoadTexture(path string) (draw.Texture, error) {
	return f(path)
}

// FileLoader decodes PNG and JPEG files into in-memory images.
type FileLoader struct{}

// LoadTexture opens and decodes the image at path.
func (FileLoader) LoadTexture(path string) (draw.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Load loads the texture at path and records its dimensions.
// Every failure is returned as a *LoadError.
func Load(loader Loader, path string) (*Asset, error) {
	tex, err := loader.LoadTexture(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	b := tex.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptyImage}
	}

	return &Asset{
		Texture: tex,
		Width:   float64(b.Dx()),
		Height:  float64(b.Dy()),
	}, nil
}
