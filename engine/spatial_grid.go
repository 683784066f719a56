package engine

import (
	"github.com/lixenwraith/verlet-swarm/physics"
	"github.com/lixenwraith/verlet-swarm/vmath"
)

// forwardStencil is the half neighbourhood visited from each occupied cell
// Together with the cell itself it covers every adjacent cell pair once, including
// both diagonals: (+1,+1) and (-1,+1)
var forwardStencil = [4]vmath.Cell{{X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}}

// Bucket is one occupied cell and its particles in insertion order
type Bucket struct {
	Key       vmath.Cell
	Particles []*physics.Particle
}

// SpatialGrid is an unbounded spatial hash keyed by floor(coord/CellSize)
// It is a per-tick snapshot: Rebuild once, then query; positions changed after
// Rebuild are not re-bucketed until the next Rebuild
type SpatialGrid struct {
	CellSize float64

	index   map[vmath.Cell]int // Cell -> position in buckets
	buckets []Bucket           // Occupied cells in first-insertion order
}

// NewSpatialGrid creates an empty grid with the given cell edge
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		CellSize: cellSize,
		index:    make(map[vmath.Cell]int),
	}
}

// Rebuild clears the grid and buckets every particle by its current center
// Bucket backing arrays are reused across rebuilds
func (g *SpatialGrid) Rebuild(particles []*physics.Particle) {
	g.Clear()

	for _, p := range particles {
		key := vmath.CellOf(p.Pos, g.CellSize)
		i, ok := g.index[key]
		if !ok {
			i = len(g.buckets)
			if i < cap(g.buckets) {
				g.buckets = g.buckets[:i+1]
				g.buckets[i].Key = key
			} else {
				g.buckets = append(g.buckets, Bucket{Key: key})
			}
			g.index[key] = i
		}
		g.buckets[i].Particles = append(g.buckets[i].Particles, p)
	}
}

// Clear removes all particles, dropping references held by reused buckets
func (g *SpatialGrid) Clear() {
	clear(g.index)
	for i := range g.buckets {
		clear(g.buckets[i].Particles)
		g.buckets[i].Particles = g.buckets[i].Particles[:0]
	}
	g.buckets = g.buckets[:0]
}

// Len returns the number of occupied cells
func (g *SpatialGrid) Len() int {
	return len(g.buckets)
}

// Cells returns occupied buckets in first-insertion order
// INTERNAL USE ONLY - the slice is invalidated by the next Rebuild
func (g *SpatialGrid) Cells() []Bucket {
	return g.buckets
}

// At returns the particles in cell c, nil if unoccupied
func (g *SpatialGrid) At(c vmath.Cell) []*physics.Particle {
	i, ok := g.index[c]
	if !ok {
		return nil
	}
	return g.buckets[i].Particles
}

// ForEachCandidatePair delivers every broad-phase candidate pair to fn
// Within a cell each ordered pair (i, j), i != j, is delivered, so same-cell pairs
// arrive twice; across a cell and a forward neighbour each pair arrives once
// fn may move particles but must not Rebuild the grid
func (g *SpatialGrid) ForEachCandidatePair(fn func(a, b *physics.Particle)) {
	for ci := range g.buckets {
		cell := g.buckets[ci].Particles

		for i, a := range cell {
			for j, b := range cell {
				if i != j {
					fn(a, b)
				}
			}
		}

		key := g.buckets[ci].Key
		for _, off := range forwardStencil {
			ni, ok := g.index[key.Offset(off.X, off.Y)]
			if !ok {
				continue
			}
			neighbor := g.buckets[ni].Particles
			for _, a := range cell {
				for _, b := range neighbor {
					fn(a, b)
				}
			}
		}
	}
}
