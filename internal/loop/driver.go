package loop

import (
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/input"
	"github.com/tomz197/asteriods/internal/loop/config"
	"github.com/tomz197/asteriods/internal/object"
)

// Driver applies input, update and render ticks to a State.
// Every method runs to completion; none blocks or fails.
type Driver struct {
	state *State
}

// NewDriver creates a driver that owns state.
func NewDriver(state *State) *Driver {
	return &Driver{state: state}
}

// State returns the world being driven.
func (d *Driver) State() *State {
	return d.state
}

// HandleEvents folds a batch of events in arrival order.
func (d *Driver) HandleEvents(events []input.Event) {
	for _, ev := range events {
		d.HandleEvent(ev)
	}
}

// HandleEvent folds a single key event.
func (d *Driver) HandleEvent(ev input.Event) {
	switch ev.Kind {
	case input.KeyPress:
		d.KeyPress(ev.Key)
	case input.KeyRelease:
		d.KeyRelease(ev.Key)
	}
}

// KeyPress marks k as held. Space also fires, once per press.
func (d *Driver) KeyPress(k input.Key) {
	if k == input.KeySpace {
		d.Fire()
	}
	d.state.Keys.Insert(k)
}

// KeyRelease marks k as no longer held.
func (d *Driver) KeyRelease(k input.Key) {
	d.state.Keys.Remove(k)
}

// Fire launches a beam from the ship's current position.
func (d *Driver) Fire() {
	s := d.state
	s.Beams = append(s.Beams, object.NewSprite(s.assets.Beam(), s.Ship.Pos))
}

// Update advances the world by dt seconds. Negative or NaN dt counts as 0.
func (d *Driver) Update(dt float64) {
	if !(dt > 0) {
		dt = 0
	}
	s := d.state
	step := config.Speed * dt
	now := s.TotalTime + dt

	d.moveShip(step)

	// Beams fly up and leave through the top edge
	object.MoveAll(s.Beams, 0, -step)
	s.Beams = object.Keep(s.Beams, func(b object.Sprite) bool { return b.Pos.Y > 0 })

	s.Stars.Scroll(step, config.WorldWidth, config.WorldHeight, s.rng)

	// Asteroids fall and leave through the bottom edge
	object.MoveAll(s.Asteroids, 0, step)
	s.Asteroids = object.Keep(s.Asteroids, func(a object.Sprite) bool { return a.Pos.Y < config.WorldHeight })

	d.spawnAsteroid(now)

	s.TotalTime = now
}

// moveShip applies held Left/Right keys. The ship is not clamped to the field.
func (d *Driver) moveShip(step float64) {
	s := d.state
	if s.Keys.Contains(input.KeyLeft) {
		s.Ship.Pos.X -= step
	}
	if s.Keys.Contains(input.KeyRight) {
		s.Ship.Pos.X += step
	}
}

// spawnAsteroid drops at most one asteroid at the top edge once more than
// AsteroidInterval has passed since the previous one. now is the clock as
// it reads at the end of the current tick.
func (d *Driver) spawnAsteroid(now float64) {
	s := d.state
	if !(s.LastAsteroid < now-s.AsteroidInterval) {
		return
	}
	s.LastAsteroid = now
	pos := draw.Point{X: s.rng.Float64() * config.WorldWidth, Y: 0}
	s.Asteroids = append(s.Asteroids, object.NewSprite(s.assets.Lutetia(), pos))
}

// Render paints one frame back to front: background, stars, beams,
// asteroids and finally the ship.
func (d *Driver) Render(dst draw.Surface) {
	s := d.state
	t := draw.Identity()

	dst.Clear(draw.Background)
	s.Stars.Draw(dst, t)
	for _, b := range s.Beams {
		b.Draw(dst, t)
	}
	for _, a := range s.Asteroids {
		a.Draw(dst, t)
	}
	s.Ship.Draw(dst, t)
}
