// Package palette maps particle identities to display colors
// It is a side channel: nothing here is read by the physics core
package palette

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/verlet-swarm/parameter"
)

// ColorSource resolves a particle identity to a color; ok is false when the source has no entry
type ColorSource interface {
	Color(id int) (c colorful.Color, ok bool)
}

// Table is a color per identity, typically filled once by sampling a bitmap
type Table []colorful.Color

func (t Table) Color(id int) (colorful.Color, bool) {
	if id < 0 || id >= len(t) {
		return colorful.Color{}, false
	}
	return t[id], true
}

// Fallback is the deterministic palette used when no sampled table covers an identity
type Fallback struct{}

func (Fallback) Color(id int) (colorful.Color, bool) {
	hue := math.Mod(float64(id)*parameter.FallbackHueStep, 360)
	return colorful.Hsl(hue, parameter.FallbackSaturation, parameter.FallbackLightness), true
}

// Noise colors identities along a perlin curve so neighbours in spawn order get related hues
type Noise struct {
	noise *perlin.Perlin
}

// NewNoise creates a noise palette; equal seeds give equal palettes
func NewNoise(seed int64) *Noise {
	return &Noise{
		noise: perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, seed),
	}
}

func (n *Noise) Color(id int) (colorful.Color, bool) {
	v := n.noise.Noise1D(float64(id) * parameter.NoiseFrequency)
	hue := math.Mod((v+1)*180, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsv(hue, 0.7, 0.9), true
}

// Chain tries each source in order
type Chain []ColorSource

func (c Chain) Color(id int) (colorful.Color, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if col, ok := s.Color(id); ok {
			return col, true
		}
	}
	return colorful.Color{}, false
}

// Resolve returns the color for id from src, falling back to Fallback
func Resolve(src ColorSource, id int) colorful.Color {
	if src != nil {
		if c, ok := src.Color(id); ok {
			return c
		}
	}
	c, _ := Fallback{}.Color(id)
	return c
}
