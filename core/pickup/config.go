package pickup

import (
	"fmt"
	"time"
)

// Config defines the randomized dwell bounds in seconds.
type Config struct {
	MinSeconds int `json:"min_seconds"`
	MaxSeconds int `json:"max_seconds"`
	// Concurrent runs one goroutine per dequeued placement instead of a
	// single sequential loop.
	Concurrent bool `json:"concurrent"`
}

// SetDefaults applies a dwell between four and eight seconds.
func (c *Config) SetDefaults() {
	if c.MinSeconds == 0 {
		c.MinSeconds = 4
	}
	if c.MaxSeconds == 0 {
		c.MaxSeconds = 8
	}
}

// Validate requires positive bounds with min <= max.
func (c Config) Validate() error {
	if c.MinSeconds <= 0 || c.MaxSeconds <= 0 {
		return fmt.Errorf("pickup bounds must be positive: min=%d max=%d", c.MinSeconds, c.MaxSeconds)
	}
	if c.MinSeconds > c.MaxSeconds {
		return fmt.Errorf("pickup min %d exceeds max %d", c.MinSeconds, c.MaxSeconds)
	}
	return nil
}

// Bounds converts the configuration to durations.
func (c Config) Bounds() Bounds {
	return Bounds{
		Min:        time.Duration(c.MinSeconds) * time.Second,
		Max:        time.Duration(c.MaxSeconds) * time.Second,
		Concurrent: c.Concurrent,
	}
}

// Bounds is the dwell range used by the worker.
type Bounds struct {
	Min        time.Duration
	Max        time.Duration
	Concurrent bool
}
