// Package loop holds the world state and the driver that folds input into
// it, advances it by dt and renders it onto a host surface.
package loop

import (
	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/input"
	"github.com/tomz197/asteriods/internal/loop/config"
	"github.com/tomz197/asteriods/internal/object"
)

// State is the mutable game world. It is owned by a single Driver and
// touched only from the host's loop goroutine.
type State struct {
	Ship      object.Sprite
	Keys      input.KeySet
	Stars     object.Starfield
	Beams     []object.Sprite
	Asteroids []object.Sprite

	AsteroidInterval float64 // Seconds between asteroid spawns
	TotalTime        float64 // Simulated seconds since start
	LastAsteroid     float64 // TotalTime of the most recent spawn

	assets *asset.Registry
	rng    object.Random
}

// NewState creates a world with the ship resting on the bottom edge,
// centered horizontally, and a randomly scattered starfield.
func NewState(assets *asset.Registry, rng object.Random) *State {
	ship := assets.Spaceship()
	return &State{
		Ship: object.NewSprite(ship, draw.Point{
			X: config.WorldWidth / 2,
			Y: config.WorldHeight - ship.Height/2,
		}),
		Keys:             input.NewKeySet(),
		Stars:            object.NewStarfield(rng, config.WorldWidth, config.WorldHeight),
		AsteroidInterval: config.AsteroidInterval,
		assets:           assets,
		rng:              rng,
	}
}
