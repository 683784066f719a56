package physics

import (
	"github.com/lixenwraith/verlet-swarm/parameter"
)

// Collision profiles - pre-defined, passed by pointer in the hot path

// DefaultCollision splits overlap evenly and feeds impact*0.8 back into each body
var DefaultCollision = CollisionProfile{
	Restitution:     parameter.CollisionRestitution,
	PositionalShare: 0.5,
	ImpulseShare:    parameter.CollisionImpulseShare,
}

// NewCollisionProfile builds a symmetric profile
func NewCollisionProfile(restitution, impulseShare float64) CollisionProfile {
	return CollisionProfile{
		Restitution:     restitution,
		PositionalShare: 0.5,
		ImpulseShare:    impulseShare,
	}
}
