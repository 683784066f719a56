package physics

// CollisionProfile defines narrow-phase response parameters
// Profiles are typically pre-defined as package variables
type CollisionProfile struct {
	// Restitution scales the normal relative velocity fed back to each body (< 1)
	Restitution float64
	// PositionalShare is the fraction of overlap each body is pushed (0.5 keeps the pair's midpoint fixed)
	PositionalShare float64
	// ImpulseShare scales the impact*Restitution correction written to each body's previous position
	ImpulseShare float64
}

// Overlap returns penetration depth of the pair, 0 when separated
func Overlap(a, b *Particle) float64 {
	dist := b.Pos.Sub(a.Pos).Len()
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return 0
	}
	return minDist - dist
}

// Resolve separates an overlapping pair and damps their approach along the contact normal
// Coincident centers have no normal and are skipped. Returns true if the pair was corrected
func Resolve(a, b *Particle, profile *CollisionProfile) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius

	if dist >= minDist || dist == 0 {
		return false
	}

	n := delta.Scale(1 / dist)

	// Approach speed is sampled before the positional push alters Pos - Prev
	impact := b.Velocity().Sub(a.Velocity()).Dot(n)

	// Positional correction
	correction := n.Scale((minDist - dist) * profile.PositionalShare)
	a.Pos = a.Pos.Sub(correction)
	b.Pos = b.Pos.Add(correction)

	// Already separating
	if impact > 0 {
		return true
	}

	// Equal and opposite, written through previous positions
	impulse := n.Scale(impact * profile.Restitution * profile.ImpulseShare)
	a.Prev = a.Prev.Sub(impulse)
	b.Prev = b.Prev.Add(impulse)

	return true
}
