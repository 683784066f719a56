package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/verlet-swarm/parameter"
)

// partial is one exponentially decaying sine of a bell voice
type partial struct {
	ratio float64 // Frequency relative to the fundamental
	gain  float64
	decay float64 // Seconds for the amplitude to fall to 1/e
}

// bellPartials are inharmonic ratios of a small struck bar; gains sum to 1
var bellPartials = []partial{
	{ratio: 1, gain: 0.6, decay: 0.35},
	{ratio: 2.76, gain: 0.25, decay: 0.18},
	{ratio: 5.40, gain: 0.15, decay: 0.08},
}

// pentatonic is the major pentatonic scale in semitones above the root
var pentatonic = [5]float64{0, 2, 4, 7, 9}

// bell renders the partials directly, mono on both channels, for a fixed sample count
type bell struct {
	freq   float64
	rate   float64
	attack int
	total  int
	pos    int
}

func (b *bell) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}

	n = min(len(samples), b.total-b.pos)
	for i := range n {
		t := float64(b.pos) / b.rate
		v := 0.0
		for _, p := range bellPartials {
			v += p.gain * math.Exp(-t/p.decay) * math.Sin(2*math.Pi*b.freq*p.ratio*t)
		}
		if b.pos < b.attack {
			v *= float64(b.pos) / float64(b.attack)
		}
		samples[i] = [2]float64{v, v}
		b.pos++
	}
	return n, true
}

func (b *bell) Err() error { return nil }

// ChimePitch returns the fundamental for an episode count: one pentatonic step per
// episode, alternating between two octaves
func ChimePitch(episode int) float64 {
	episode = max(episode-1, 0)
	semitones := pentatonic[episode%len(pentatonic)] + 12*float64((episode/len(pentatonic))%2)
	return parameter.ChimeFundamental * math.Pow(2, semitones/12)
}

// NewChime builds the bell struck when an episode completes; volume is linear in [0, 1]
func NewChime(rate beep.SampleRate, volume float64, episode int) beep.Streamer {
	return newBell(rate, ChimePitch(episode), parameter.ChimeDuration, parameter.ChimeAttack, volume)
}

func newBell(rate beep.SampleRate, freq float64, duration, attack time.Duration, volume float64) beep.Streamer {
	b := &bell{
		freq:   freq,
		rate:   float64(rate),
		attack: rate.N(attack),
		total:  rate.N(duration),
	}
	// Gain multiplies by 1+Gain
	return &effects.Gain{Streamer: b, Gain: volume - 1}
}
