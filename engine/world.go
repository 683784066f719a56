package engine

import (
	"github.com/lixenwraith/verlet-swarm/physics"
)

// World is one simulation session: it owns the particle collection and the broad-phase grid
// A World is not safe for concurrent use; independent Worlds may run in parallel
type World struct {
	cfg       Config
	particles []*physics.Particle
	grid      *SpatialGrid
	ticks     uint64
	nextID    int // Identity handed out by the next Spawn
}

// NewWorld creates an empty world; cfg is copied
func NewWorld(cfg *Config) *World {
	return &World{
		cfg:  *cfg,
		grid: NewSpatialGrid(cfg.CellSize),
	}
}

// Spawn adds a particle at (x, y) with horizontal offset offsetX, using the configured radius
// Identities are unique within the world until Reset; without Add they equal the spawn index
func (w *World) Spawn(x, y, offsetX float64) *physics.Particle {
	p := physics.Spawn(w.nextID, x, y, offsetX, w.cfg.Radius)
	w.nextID++
	w.particles = append(w.particles, p)
	return p
}

// Add appends externally built particles without changing their identity
// Later Spawn calls continue above the highest identity added
func (w *World) Add(ps ...*physics.Particle) {
	for _, p := range ps {
		w.nextID = max(w.nextID, p.ID+1)
	}
	w.particles = append(w.particles, ps...)
}

// Step advances the world by dt
func (w *World) Step(dt float64) StepStats {
	w.ticks++
	return Step(w.particles, dt, w.grid, &w.cfg)
}

// Particles returns the live collection; renderers read Pos and Radius after Step
func (w *World) Particles() []*physics.Particle {
	return w.particles
}

func (w *World) Len() int {
	return len(w.particles)
}

// Ticks returns steps taken since creation or the last Reset
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Reset clears the particle collection and the grid
func (w *World) Reset() {
	clear(w.particles)
	w.particles = w.particles[:0]
	w.grid.Clear()
	w.ticks = 0
	w.nextID = 0
}

// TotalOverlap returns summed penetration depth of all pairs
func (w *World) TotalOverlap() float64 {
	return TotalOverlap(w.particles)
}

// Config returns a copy of the world's configuration
func (w *World) Config() Config {
	return w.cfg
}

// Grid exposes the broad-phase snapshot from the last Step
func (w *World) Grid() *SpatialGrid {
	return w.grid
}
