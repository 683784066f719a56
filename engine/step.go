package engine

import (
	"time"

	"github.com/lixenwraith/verlet-swarm/physics"
)

// StepStats is optional profiling data for one tick
type StepStats struct {
	ResolveTime time.Duration // Time spent in candidate-pair resolution
	Candidates  int           // Candidate pairs delivered across all passes
	Corrections int           // Resolve calls that separated an overlapping pair
}

// Step advances particles by one tick of dt, mutating them in place
// Order: gravity, integrate, constrain per particle; rebuild grid; cfg.Passes resolution sweeps
// The caller must have exclusive access to particles for the duration of the call
func Step(particles []*physics.Particle, dt float64, grid *SpatialGrid, cfg *Config) StepStats {
	for _, p := range particles {
		p.ApplyForce(cfg.Gravity)
		p.IntegrateDamped(dt, cfg.Damping)
		p.ConstrainWith(cfg.Bounds.Width, cfg.Bounds.Height, cfg.WallRestitution)
	}

	grid.Rebuild(particles)

	profile := physics.NewCollisionProfile(cfg.Restitution, cfg.ImpulseShare)

	var stats StepStats
	start := time.Now()
	for range cfg.Passes {
		c, n := ResolvePass(grid, &profile, cfg.PairRepeat)
		stats.Candidates += c
		stats.Corrections += n
	}
	stats.ResolveTime = time.Since(start)

	return stats
}

// ResolvePass runs one sweep over the grid's candidate pairs, resolving each pair repeat times
// Returns candidate pairs delivered and corrections applied
func ResolvePass(grid *SpatialGrid, profile *physics.CollisionProfile, repeat int) (candidates, corrections int) {
	grid.ForEachCandidatePair(func(a, b *physics.Particle) {
		candidates++
		for range repeat {
			if physics.Resolve(a, b, profile) {
				corrections++
			}
		}
	})
	return candidates, corrections
}

// TotalOverlap sums penetration depth over every unordered particle pair
// Brute force, intended for diagnostics and tests
func TotalOverlap(particles []*physics.Particle) float64 {
	total := 0.0
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			total += physics.Overlap(particles[i], particles[j])
		}
	}
	return total
}
