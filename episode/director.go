// Package episode drives a World through repeated fill, settle, sample and playback runs
// It owns spawn cadence and color sampling; the physics core knows nothing about either
package episode

import (
	"log"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/verlet-swarm/engine"
	"github.com/lixenwraith/verlet-swarm/palette"
	"github.com/lixenwraith/verlet-swarm/parameter"
)

// Phase is the director's position in the episode cycle
type Phase uint8

const (
	// PhaseFilling spawns particles until the population is reached
	PhaseFilling Phase = iota
	// PhaseSettling lets the full population come to rest
	PhaseSettling
	// PhaseSampling reads a color per particle from the sampler (transient, within one tick)
	PhaseSampling
	// PhasePlayback reruns the episode with sampled colors
	PhasePlayback
	// PhaseDone stops ticking
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseFilling:
		return "filling"
	case PhaseSettling:
		return "settling"
	case PhaseSampling:
		return "sampling"
	case PhasePlayback:
		return "playback"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Director owns a World and applies the spawn and episode policy around its Step
type Director struct {
	cfg     Config
	world   *engine.World
	sampler palette.Sampler
	colors  palette.ColorSource
	jitter  *perlin.Perlin

	phase   Phase
	frame   int
	episode int

	// OnPhaseChange is called after every transition
	OnPhaseChange func(from, to Phase)
	// OnEpisodeComplete is called when an episode's colors have been sampled
	OnEpisodeComplete func(episode int)
}

// NewDirector creates a director over world; sampler may be nil, in which case
// playback uses the fallback palette
func NewDirector(world *engine.World, cfg *Config, sampler palette.Sampler) *Director {
	return &Director{
		cfg:     *cfg,
		world:   world,
		sampler: sampler,
		jitter:  perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, cfg.Seed),
	}
}

// Tick runs one frame: spawn policy, then one physics step
func (d *Director) Tick(dt float64) engine.StepStats {
	if d.phase == PhaseDone {
		return engine.StepStats{}
	}

	if d.world.Len() < d.cfg.Population && d.frame%d.cfg.SpawnEvery == 0 {
		d.spawn()
	} else if d.frame > d.cfg.lastFrame() {
		d.finishEpisode()
		return engine.StepStats{}
	}

	d.frame++
	stats := d.world.Step(dt)

	if d.phase == PhaseFilling && d.world.Len() >= d.cfg.Population {
		d.setPhase(PhaseSettling)
	}
	return stats
}

// Advance runs speed ticks, at least one, and returns the summed stats
func (d *Director) Advance(dt float64, speed int) engine.StepStats {
	var total engine.StepStats
	for range max(speed, 1) {
		s := d.Tick(dt)
		total.ResolveTime += s.ResolveTime
		total.Candidates += s.Candidates
		total.Corrections += s.Corrections
	}
	return total
}

func (d *Director) spawn() {
	bounds := d.world.Config().Bounds
	offset := d.cfg.SpawnOffsetX
	if d.cfg.SpawnJitter != 0 {
		offset += d.cfg.SpawnJitter * d.jitter.Noise1D(float64(d.world.Len())*0.37+0.5)
	}
	d.world.Spawn(bounds.Width/2, d.cfg.SpawnY, offset)
}

func (d *Director) finishEpisode() {
	if d.phase == PhasePlayback {
		d.episode++
		if d.cfg.Loop {
			log.Printf("episode %d: playback complete, looping", d.episode)
			d.restart()
			return
		}
		log.Printf("episode %d: playback complete", d.episode)
		d.setPhase(PhaseDone)
		return
	}

	d.setPhase(PhaseSampling)
	if d.sampler != nil {
		d.colors = palette.SampleTable(d.sampler, d.world.Particles())
	}
	d.episode++
	log.Printf("episode %d: sampled %d particles", d.episode, d.world.Len())

	d.restart()
	d.setPhase(PhasePlayback)

	if d.OnEpisodeComplete != nil {
		d.OnEpisodeComplete(d.episode)
	}
}

func (d *Director) restart() {
	d.world.Reset()
	d.frame = 0
}

func (d *Director) setPhase(to Phase) {
	from := d.phase
	d.phase = to
	log.Printf("episode %d: %s -> %s at frame %d", d.episode, from, to, d.frame)
	if d.OnPhaseChange != nil {
		d.OnPhaseChange(from, to)
	}
}

// Color returns the display color for a particle identity
func (d *Director) Color(id int) colorful.Color {
	return palette.Resolve(d.colors, id)
}

// SetColors replaces the active color source
func (d *Director) SetColors(src palette.ColorSource) {
	d.colors = src
}

func (d *Director) Phase() Phase {
	return d.phase
}

func (d *Director) Frame() int {
	return d.frame
}

// Episode returns completed episodes
func (d *Director) Episode() int {
	return d.episode
}

func (d *Director) Done() bool {
	return d.phase == PhaseDone
}

func (d *Director) World() *engine.World {
	return d.world
}
