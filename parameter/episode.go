package parameter

// Spawn policy
const (
	// Population is the particle count at which spawning stops
	Population = 700

	// SpawnEvery is the frame interval between spawns
	SpawnEvery = 20

	// SettleFrames is how long the full population settles before sampling
	SettleFrames = 300

	// SpawnY is the spawn height below the top edge
	SpawnY = 5.0

	// SpawnOffsetX is the initial horizontal displacement encoded into the previous position
	SpawnOffsetX = 0.2

	// SpawnJitter scales the perlin jitter added to SpawnOffsetX (0 disables)
	SpawnJitter = 0.0

	// SpawnNoiseSeed seeds the jitter noise; jitter is a pure function of particle id
	SpawnNoiseSeed = 1337
)

// Playback speed
const (
	// SpeedMin and SpeedMax bound ticks per frame
	SpeedMin = 1
	SpeedMax = 64
)
