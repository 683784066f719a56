package episode

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/verlet-swarm/parameter"
)

// Config is the spawn policy of one episode
type Config struct {
	Population   int     `toml:"population"`     // Spawning stops at this count
	SpawnEvery   int     `toml:"spawn_every"`    // Frames between spawns
	SettleFrames int     `toml:"settle_frames"`  // Extra frames after the last possible spawn
	SpawnY       float64 `toml:"spawn_y"`        // Spawn height, x is the arena center
	SpawnOffsetX float64 `toml:"spawn_offset_x"` // Initial horizontal displacement
	SpawnJitter  float64 `toml:"spawn_jitter"`   // Perlin jitter amplitude added to SpawnOffsetX
	Seed         int64   `toml:"seed"`           // Jitter noise seed
	Loop         bool    `toml:"loop"`           // Replay forever instead of stopping after playback
}

// DefaultConfig returns the spawn policy from parameter defaults
func DefaultConfig() *Config {
	return &Config{
		Population:   parameter.Population,
		SpawnEvery:   parameter.SpawnEvery,
		SettleFrames: parameter.SettleFrames,
		SpawnY:       parameter.SpawnY,
		SpawnOffsetX: parameter.SpawnOffsetX,
		SpawnJitter:  parameter.SpawnJitter,
		Seed:         parameter.SpawnNoiseSeed,
	}
}

// LoadConfig decodes the [episode] table of a TOML file over the defaults
func LoadConfig(path string) (*Config, error) {
	doc := struct {
		Episode Config `toml:"episode"`
	}{Episode: *DefaultConfig()}

	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "episode" {
			return nil, fmt.Errorf("config %s: unknown key %q", path, key.String())
		}
	}

	cfg := &doc.Episode
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig for a non-empty path, DefaultConfig otherwise
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate rejects spawn policies that can never complete
func (c *Config) Validate() error {
	switch {
	case c.Population < 1:
		return fmt.Errorf("population must be at least 1, got %d", c.Population)
	case c.SpawnEvery < 1:
		return fmt.Errorf("spawn_every must be at least 1, got %d", c.SpawnEvery)
	case c.SettleFrames < 0:
		return fmt.Errorf("settle_frames must not be negative, got %d", c.SettleFrames)
	}
	return nil
}

// lastFrame is the frame after which an episode ends
func (c *Config) lastFrame() int {
	return c.Population*c.SpawnEvery + c.SettleFrames
}
