package parameter

// Integration
const (
	// GravityY is the downward acceleration in arena units per second²
	GravityY = 600.0

	// Damping scales implicit velocity every integration step (< 1 bleeds energy)
	Damping = 0.99

	// TimeStep is the fixed physics step in seconds (two physics ticks per 60 Hz frame)
	TimeStep = 1.0 / 60.0 / 2.0
)

// Boundary and collision response
const (
	// WallRestitution is applied to implicit velocity on a wall hit
	// Negative: the normal component flips sign and keeps 70% of its magnitude
	WallRestitution = -0.7

	// CollisionRestitution scales the normal relative velocity fed back into previous positions
	CollisionRestitution = 0.8

	// CollisionImpulseShare scales the per-body velocity correction; 1 applies the full
	// impact*restitution to each body, lower values soften dense piles
	CollisionImpulseShare = 1.0
)

// Broad-phase
const (
	// CellSize is the spatial hash cell edge in arena units, several particle diameters wide
	CellSize = 80.0

	// ResolvePasses is the number of candidate-pair sweeps per tick
	ResolvePasses = 2

	// PairRepeat is how many times each delivered candidate pair is resolved within one sweep
	PairRepeat = 1
)

// Arena
const (
	ArenaWidth  = 400.0
	ArenaHeight = 400.0

	// ParticleRadius is the collision and draw radius of spawned particles
	ParticleRadius = 8.0
)
