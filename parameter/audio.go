package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime played when an episode completes
const (
	ChimeDuration = 900 * time.Millisecond
	ChimeAttack   = 4 * time.Millisecond

	// ChimeFundamental is the pitch of the first episode; later episodes climb a pentatonic scale
	ChimeFundamental = 523.25
	ChimeVolume      = 0.4
)
