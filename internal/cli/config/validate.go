package config

import "fmt"

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Justify {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("justify must be one of left, center or right, got %q", c.Justify)
	}
	if c.MaxUnique < 1 {
		return fmt.Errorf("max_unique must be at least 1, got %d", c.MaxUnique)
	}
	if c.StrongThreshold < 0 || c.StrongThreshold > 1 {
		return fmt.Errorf("strong_threshold must be between 0 and 1, got %g", c.StrongThreshold)
	}
	return nil
}
