package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/verlet-swarm/parameter"
	"github.com/lixenwraith/verlet-swarm/vmath"
)

const eps = 1e-9

func TestSpawnEncodesInitialVelocity(t *testing.T) {
	p := Spawn(7, 200, 5, 0.2, 8)

	if p.ID != 7 || p.Radius != 8 {
		t.Fatalf("unexpected identity/radius: %+v", p)
	}
	if p.Pos != vmath.V2(200, 5) {
		t.Errorf("Pos = %v", p.Pos)
	}
	v := p.Velocity()
	if math.Abs(v.X-0.2) > eps || v.Y != 0 {
		t.Errorf("Velocity = %v, want (0.2, 0)", v)
	}
	if !p.Accel.IsZero() {
		t.Errorf("Accel should start at zero, got %v", p.Accel)
	}
}

func TestApplyForceAccumulates(t *testing.T) {
	p := Spawn(0, 0, 0, 0, 1)
	p.ApplyForce(vmath.V2(1, 2))
	p.ApplyForce(vmath.V2(-3, 4))

	if p.Accel != vmath.V2(-2, 6) {
		t.Errorf("Accel = %v, want (-2, 6)", p.Accel)
	}
	if p.Pos != vmath.V2(0, 0) || p.Prev != vmath.V2(0, 0) {
		t.Errorf("ApplyForce must only touch the accumulator")
	}
}

// TestIntegrateMatchesRecurrence checks the damped Verlet recurrence bit for bit
func TestIntegrateMatchesRecurrence(t *testing.T) {
	// Variables, not constants: constant folding would evaluate dt*dt exactly
	var (
		dt    float64 = parameter.TimeStep
		g     float64 = parameter.GravityY
		ticks         = 240
	)

	p := Spawn(0, 100, 10, 0, 8)

	y, prev := 10.0, 10.0
	for i := 0; i < ticks; i++ {
		p.ApplyForce(vmath.V2(0, g))
		p.Integrate(dt)

		v := (y - prev) * parameter.Damping
		next := (y + v) + g*(dt*dt)
		prev, y = y, next

		if p.Pos.Y != y || p.Prev.Y != prev {
			t.Fatalf("tick %d: got pos=%v prev=%v, want pos=%v prev=%v", i, p.Pos.Y, p.Prev.Y, y, prev)
		}
		if p.Pos.X != 100 {
			t.Fatalf("tick %d: horizontal drift %v", i, p.Pos.X)
		}
		if !p.Accel.IsZero() {
			t.Fatalf("tick %d: accumulator not reset", i)
		}
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	run := func() vmath.Vec2 {
		p := Spawn(3, 50, 5, 0.2, 8)
		for i := 0; i < 500; i++ {
			p.ApplyForce(vmath.V2(0, parameter.GravityY))
			p.Integrate(parameter.TimeStep)
		}
		return p.Pos
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("identical inputs diverged: %v vs %v", a, b)
	}
}

func TestIntegrateDampsVelocity(t *testing.T) {
	p := Spawn(0, 0, 0, 10, 1)
	p.Integrate(parameter.TimeStep)

	v := p.Velocity()
	if math.Abs(v.X-10*parameter.Damping) > eps {
		t.Errorf("velocity after one step = %v, want %v", v.X, 10*parameter.Damping)
	}
}

func TestConstrainReflects(t *testing.T) {
	const (
		w, h = 400.0, 400.0
		r    = 8.0
	)

	tests := []struct {
		name     string
		pos      vmath.Vec2
		vel      vmath.Vec2
		wantPos  vmath.Vec2
		reflectX bool
		reflectY bool
	}{
		{"floor", vmath.V2(200, 405), vmath.V2(0.5, 3), vmath.V2(200, h-r), false, true},
		{"left", vmath.V2(2, 100), vmath.V2(-4, 0), vmath.V2(r, 100), true, false},
		{"right", vmath.V2(399, 100), vmath.V2(2, 1), vmath.V2(w-r, 100), true, false},
		{"bottom left corner", vmath.V2(-1, 401), vmath.V2(-2, 5), vmath.V2(r, h-r), true, true},
		{"bottom right corner", vmath.V2(398, 399), vmath.V2(1, 1), vmath.V2(w-r, h-r), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{Pos: tt.pos, Prev: tt.pos.Sub(tt.vel), Radius: r}

			if !p.Constrain(w, h) {
				t.Fatal("expected a correction")
			}

			if math.Abs(p.Pos.X-tt.wantPos.X) > eps || math.Abs(p.Pos.Y-tt.wantPos.Y) > eps {
				t.Errorf("Pos = %v, want %v", p.Pos, tt.wantPos)
			}

			// Containment from every edge except the open top
			if p.Pos.X-r < -eps || p.Pos.X+r > w+eps || p.Pos.Y+r > h+eps {
				t.Errorf("particle escaped: %v", p.Pos)
			}

			v := p.Velocity()
			wantX, wantY := tt.vel.X, tt.vel.Y
			if tt.reflectX {
				wantX = tt.vel.X * parameter.WallRestitution
			}
			if tt.reflectY {
				wantY = tt.vel.Y * parameter.WallRestitution
			}
			if math.Abs(v.X-wantX) > eps || math.Abs(v.Y-wantY) > eps {
				t.Errorf("velocity = %v, want (%v, %v)", v, wantX, wantY)
			}
		})
	}
}

func TestConstrainInsideIsNoop(t *testing.T) {
	p := Spawn(0, 200, 5, 0.2, 8)
	before := *p

	if p.Constrain(400, 400) {
		t.Error("unexpected correction for interior particle")
	}
	if *p != before {
		t.Errorf("interior particle changed: %+v -> %+v", before, *p)
	}
}
