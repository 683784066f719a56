package physics

import (
	"github.com/lixenwraith/verlet-swarm/parameter"
	"github.com/lixenwraith/verlet-swarm/vmath"
)

// Particle is a Verlet body: velocity is implicit in Pos - Prev and never stored
// Prev is written only by Integrate, Constrain and Resolve
type Particle struct {
	Pos    vmath.Vec2
	Prev   vmath.Vec2
	Accel  vmath.Vec2 // Force accumulator, zeroed by Integrate
	Radius float64
	ID     int // Display index only, irrelevant to physics
}

// Spawn creates a particle at (x, y) moving horizontally by offsetX per step
func Spawn(id int, x, y, offsetX, radius float64) *Particle {
	return &Particle{
		Pos:    vmath.V2(x, y),
		Prev:   vmath.V2(x-offsetX, y),
		Radius: radius,
		ID:     id,
	}
}

// Velocity returns the implicit per-step displacement
func (p *Particle) Velocity() vmath.Vec2 {
	return p.Pos.Sub(p.Prev)
}

// ApplyForce adds f to the accumulator
func (p *Particle) ApplyForce(f vmath.Vec2) {
	p.Accel = p.Accel.Add(f)
}

// Integrate advances one step with the default damping
func (p *Particle) Integrate(dt float64) {
	p.IntegrateDamped(dt, parameter.Damping)
}

// IntegrateDamped performs damped Verlet: p' = p + (p - prev)*damping + a*dt²
func (p *Particle) IntegrateDamped(dt, damping float64) {
	current := p.Pos
	velocity := p.Pos.Sub(p.Prev).Scale(damping)
	p.Pos = p.Pos.Add(velocity).Add(p.Accel.Scale(dt * dt))
	p.Prev = current
	p.Accel = vmath.Vec2{}
}

// Constrain keeps the particle inside [0,width]x[0,height] with the default wall restitution
func (p *Particle) Constrain(width, height float64) bool {
	return p.ConstrainWith(width, height, parameter.WallRestitution)
}

// ConstrainWith clamps against bottom, left and right edges in that order and reflects the
// implicit velocity on each corrected axis so that velocity' = velocity * restitution
// The top edge is open. Returns true if any axis was corrected
func (p *Particle) ConstrainWith(width, height, restitution float64) bool {
	hit := false

	if p.Pos.Y+p.Radius > height {
		vy := p.Pos.Y - p.Prev.Y
		p.Pos = vmath.V2(p.Pos.X, height-p.Radius)
		p.Prev = vmath.V2(p.Prev.X, p.Pos.Y-vy*restitution)
		hit = true
	}
	if p.Pos.X-p.Radius < 0 {
		vx := p.Pos.X - p.Prev.X
		p.Pos = vmath.V2(p.Radius, p.Pos.Y)
		p.Prev = vmath.V2(p.Pos.X-vx*restitution, p.Prev.Y)
		hit = true
	}
	if p.Pos.X+p.Radius > width {
		vx := p.Pos.X - p.Prev.X
		p.Pos = vmath.V2(width-p.Radius, p.Pos.Y)
		p.Prev = vmath.V2(p.Pos.X-vx*restitution, p.Prev.Y)
		hit = true
	}

	return hit
}
