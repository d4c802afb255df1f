// Package config centralizes all tunable game parameters.
package config

import "time"

// Window
const (
	WindowTitle = "Asteriods!"
)

// World dimensions in pixels. Every host renders in these coordinates.
const (
	WorldWidth  = 1024
	WorldHeight = 768
)

// Motion
const (
	Speed = 200.0 // Pixels per second for ship, beams, asteroids and stars
)

// Starfield
const (
	StarCount = 100
)

// Spawning
const (
	AsteroidInterval = 3.0 // Seconds between asteroid spawns
)

// Assets, relative to the working directory.
const (
	AssetDir      = "assets"
	SpaceshipFile = "spaceship.png"
	BeamFile      = "beam.png"
	LutetiaFile   = "lutetia.jpg"
)

// Terminal rendering
const (
	TerminalTargetFPS       = 60
	TerminalTargetFrameTime = time.Second / TerminalTargetFPS
	TerminalMaxColumns      = 256 // Canvas is clamped to this many columns
	TerminalMaxRows         = 96  // and this many rows; the rest is border
)
