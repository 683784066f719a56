package parameter

// Fallback palette (hsl(id/2, 50%, 50%))
const (
	FallbackHueStep    = 0.5
	FallbackSaturation = 0.5
	FallbackLightness  = 0.5
)

// Noise palette
const (
	NoiseAlpha     = 2.0
	NoiseBeta      = 2.0
	NoiseOctaves   = 3
	NoiseFrequency = 0.01
)
