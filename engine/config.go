package engine

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/verlet-swarm/parameter"
	"github.com/lixenwraith/verlet-swarm/vmath"
)

// Bounds is the arena rectangle [0,Width] x [0,Height]
type Bounds struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Config holds the physics parameters of one simulation
type Config struct {
	Bounds Bounds `toml:"arena"`

	Gravity  vmath.Vec2 `toml:"gravity"`   // Constant acceleration, +Y is down
	TimeStep float64    `toml:"time_step"` // Fixed dt suggested to drivers (seconds)
	Damping  float64    `toml:"damping"`
	Radius   float64    `toml:"radius"` // Radius given to spawned particles

	WallRestitution float64 `toml:"wall_restitution"` // Negative: reflects velocity
	Restitution     float64 `toml:"restitution"`      // Pairwise collision restitution
	ImpulseShare    float64 `toml:"impulse_share"`    // Fraction of impact*restitution applied per body

	CellSize float64 `toml:"cell_size"`

	// Passes x PairRepeat (x2 for same-cell pairs) sets effective correction strength
	Passes     int `toml:"passes"`
	PairRepeat int `toml:"pair_repeat"`
}

// DefaultConfig returns a fresh config populated from parameter defaults
func DefaultConfig() *Config {
	return &Config{
		Bounds:          Bounds{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		Gravity:         vmath.V2(0, parameter.GravityY),
		TimeStep:        parameter.TimeStep,
		Damping:         parameter.Damping,
		Radius:          parameter.ParticleRadius,
		WallRestitution: parameter.WallRestitution,
		Restitution:     parameter.CollisionRestitution,
		ImpulseShare:    parameter.CollisionImpulseShare,
		CellSize:        parameter.CellSize,
		Passes:          parameter.ResolvePasses,
		PairRepeat:      parameter.PairRepeat,
	}
}

// configFile is the on-disk layout; each package decodes its own table
type configFile struct {
	Physics Config `toml:"physics"`
}

// LoadConfig decodes the [physics] table of a TOML file over the defaults,
// applies environment overrides and validates the result
func LoadConfig(path string) (*Config, error) {
	doc := configFile{Physics: *DefaultConfig()}

	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "physics" {
			return nil, fmt.Errorf("config %s: unknown key %q", path, key.String())
		}
	}

	cfg := &doc.Physics
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig for a non-empty path; an empty path yields the
// defaults with environment overrides applied and validated the same way
func LoadConfigOrDefault(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides resolution strength from SWARM_PASSES and SWARM_PAIR_REPEAT
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SWARM_PASSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SWARM_PASSES: %w", err)
		}
		c.Passes = n
	}
	if v := os.Getenv("SWARM_PAIR_REPEAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SWARM_PAIR_REPEAT: %w", err)
		}
		c.PairRepeat = n
	}
	return nil
}

// Validate rejects parameters the core cannot run with
// dt is deliberately not checked here, the driver owns it
func (c *Config) Validate() error {
	switch {
	case c.Bounds.Width <= 0 || c.Bounds.Height <= 0:
		return fmt.Errorf("arena must be positive, got %vx%v", c.Bounds.Width, c.Bounds.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size must be positive, got %v", c.CellSize)
	case c.Radius <= 0:
		return fmt.Errorf("radius must be positive, got %v", c.Radius)
	case c.ImpulseShare < 0 || c.ImpulseShare > 1:
		return fmt.Errorf("impulse_share must be in [0, 1], got %v", c.ImpulseShare)
	case c.Passes < 1:
		return fmt.Errorf("passes must be at least 1, got %d", c.Passes)
	case c.PairRepeat < 1:
		return fmt.Errorf("pair_repeat must be at least 1, got %d", c.PairRepeat)
	}
	return nil
}
