package config

import (
	"errors"
	"fmt"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.DurationSeconds <= 0 {
		return errors.New("render.duration_seconds must be greater than zero")
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render resolution must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.SpecificWidth <= 0 {
		return errors.New("render.specific_width must be greater than zero")
	}
	if c.Render.SpecificWidth > c.Render.Width {
		return fmt.Errorf("render.specific_width (%d) exceeds the output width (%d)", c.Render.SpecificWidth, c.Render.Width)
	}
	if c.Render.KeyThreshold < 0 || c.Render.KeyThreshold > 255 {
		return fmt.Errorf("render.key_threshold must be within 0..255, got %d", c.Render.KeyThreshold)
	}
	if c.Render.FPS <= 0 {
		return errors.New("render.fps must be greater than zero")
	}
	if c.Render.Threads < 0 {
		return errors.New("render.threads must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
