package core

// RuntimeConfig contains terminal parameters passed to the platform at
// start-up and updated on resize.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driving the simulation (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}
