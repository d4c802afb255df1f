package loop

import (
	"math/rand/v2"
	"testing"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/draw/drawtest"
	"github.com/tomz197/asteriods/internal/loop/config"
)

var (
	spaceshipTex = &drawtest.Texture{Name: "spaceship", W: 90, H: 128}
	beamTex      = &drawtest.Texture{Name: "beam", W: 8, H: 24}
	lutetiaTex   = &drawtest.Texture{Name: "lutetia", W: 64, H: 64}
)

func testAsset(tex *drawtest.Texture) *asset.Asset {
	return &asset.Asset{Texture: tex, Width: float64(tex.W), Height: float64(tex.H)}
}

func testRegistry() *asset.Registry {
	return asset.NewRegistryFromAssets(testAsset(spaceshipTex), testAsset(beamTex), testAsset(lutetiaTex))
}

// sequence returns its values in order, then repeats the last one.
type sequence struct {
	vals []float64
	n    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[min(s.n, len(s.vals)-1)]
	s.n++
	return v
}

// newTestDriver builds a world seeded from a fixed PCG source.
func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	return NewDriver(NewState(testRegistry(), rand.New(rand.NewPCG(1, 2))))
}

// newScriptedDriver builds a world whose stars all sit at the origin and
// whose random draws come from vals.
func newScriptedDriver(t *testing.T, vals ...float64) (*Driver, *sequence) {
	t.Helper()
	rng := &sequence{vals: []float64{0}}
	d := NewDriver(NewState(testRegistry(), rng))
	rng.vals, rng.n = vals, 0
	return d, rng
}

// checkInvariants fails the test if any world invariant is broken.
func checkInvariants(t *testing.T, s *State, prevTime float64) {
	t.Helper()
	if len(s.Stars) != config.StarCount {
		t.Fatalf("star count = %d, want %d", len(s.Stars), config.StarCount)
	}
	for i, st := range s.Stars {
		if st.Y < 0 || st.Y > config.WorldHeight {
			t.Fatalf("star %d y = %v outside [0, %d]", i, st.Y, config.WorldHeight)
		}
	}
	for i, b := range s.Beams {
		if b.Pos.Y <= 0 {
			t.Fatalf("beam %d y = %v, want > 0", i, b.Pos.Y)
		}
	}
	for i, a := range s.Asteroids {
		if a.Pos.Y >= config.WorldHeight {
			t.Fatalf("asteroid %d y = %v, want < %d", i, a.Pos.Y, config.WorldHeight)
		}
	}
	if s.TotalTime < prevTime {
		t.Fatalf("total time went backwards: %v -> %v", prevTime, s.TotalTime)
	}
	if s.LastAsteroid > s.TotalTime {
		t.Fatalf("last asteroid %v after total time %v", s.LastAsteroid, s.TotalTime)
	}
}

func point(x, y float64) draw.Point {
	return draw.Point{X: x, Y: y}
}
