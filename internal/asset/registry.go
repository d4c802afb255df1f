package asset

import (
	"path/filepath"

	"github.com/tomz197/asteriods/internal/loop/config"
)

// Registry holds the three sprites of the game. It is created once and
// shared read-only by every world that renders them.
type Registry struct {
	spaceship *Asset
	beam      *Asset
	lutetia   *Asset
}

// NewRegistry loads spaceship.png, beam.png and lutetia.jpg from dir.
// The first failure aborts loading and is returned as a *LoadError.
func NewRegistry(loader Loader, dir string) (*Registry, error) {
	var r Registry
	targets := []struct {
		dst  **Asset
		file string
	}{
		{&r.spaceship, config.SpaceshipFile},
		{&r.beam, config.BeamFile},
		{&r.lutetia, config.LutetiaFile},
	}

	for _, t := range targets {
		a, err := Load(loader, filepath.Join(dir, t.file))
		if err != nil {
			return nil, err
		}
		*t.dst = a
	}
	return &r, nil
}

// NewRegistryFromAssets builds a registry from already loaded assets.
func NewRegistryFromAssets(spaceship, beam, lutetia *Asset) *Registry {
	return &Registry{spaceship: spaceship, beam: beam, lutetia: lutetia}
}

// Spaceship returns the player ship texture.
func (r *Registry) Spaceship() *Asset { return r.spaceship }

// Beam returns the projectile texture.
func (r *Registry) Beam() *Asset { return r.beam }

// Lutetia returns the asteroid texture.
func (r *Registry) Lutetia() *Asset { return r.lutetia }
