package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFrequency(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFrequency() error {
	if c.Frequency.Top < 0 {
		return errors.New("frequency.top must be >= 0")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Style {
	case "table", "plain":
	default:
		return fmt.Errorf("output.style: unsupported value %q", c.Output.Style)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q", c.Output.Color)
	}
	return nil
}
