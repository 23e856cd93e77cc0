package dispatch

import (
	"fmt"
	"time"
)

// Config defines dispatch-related settings.
type Config struct {
	// BatchSize is the number of orders processed between pacing delays.
	BatchSize int `json:"batch_size"`
	// BatchDelayMS is the pause inserted after every BatchSize orders.
	BatchDelayMS int `json:"batch_delay_ms"`
	// QueueCapacity bounds the handoff queue. Zero sizes it to the feed.
	QueueCapacity int `json:"queue_capacity"`
}

// SetDefaults applies a pace of two orders every two seconds.
func (c *Config) SetDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = 2
	}
	if c.BatchDelayMS == 0 {
		c.BatchDelayMS = 2000
	}
}

// Validate checks pacing values.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}
	if c.BatchDelayMS < 0 {
		return fmt.Errorf("batch_delay_ms must not be negative")
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("queue_capacity must not be negative")
	}
	return nil
}

// BatchDelay returns the pacing delay as a duration.
func (c Config) BatchDelay() time.Duration {
	return time.Duration(c.BatchDelayMS) * time.Millisecond
}
