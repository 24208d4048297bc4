package round

import "time"

const (
	// MinPreview and MaxPreview bound the number of upcoming pieces held in the queue.
	MinPreview = 1
	MaxPreview = 5
)

// Config holds the tunables of a round. Durations are measured in game time, as passed to Tick.
type Config struct {
	// Preview is the length of the upcoming queue, clamped to [MinPreview, MaxPreview].
	Preview int
	// Gravity is how long the active piece rests before dropping one row.
	Gravity time.Duration
	// RepeatDelay is how long a sideways key must be held before it starts repeating.
	RepeatDelay time.Duration
	// RepeatInterval is the time between repeated sideways steps.
	RepeatInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Preview:        3,
		Gravity:        500 * time.Millisecond,
		RepeatDelay:    200 * time.Millisecond,
		RepeatInterval: 50 * time.Millisecond,
	}
}

// Normalize clamps out-of-range values instead of rejecting them.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	c.Preview = min(max(c.Preview, MinPreview), MaxPreview)
	if c.Gravity <= 0 {
		c.Gravity = def.Gravity
	}
	if c.RepeatDelay < 0 {
		c.RepeatDelay = def.RepeatDelay
	}
	if c.RepeatInterval <= 0 {
		c.RepeatInterval = def.RepeatInterval
	}
	return c
}
