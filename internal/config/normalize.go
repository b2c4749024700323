package config

import "strings"

func (c *Config) normalize() error {
	c.normalizePaths()
	c.normalizeRender()
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() {
	c.Paths.BackgroundDir = strings.TrimSpace(c.Paths.BackgroundDir)
	if c.Paths.BackgroundDir == "" {
		c.Paths.BackgroundDir = defaultBackgroundDir
	}
	c.Paths.SpecificDir = strings.TrimSpace(c.Paths.SpecificDir)
	if c.Paths.SpecificDir == "" {
		c.Paths.SpecificDir = defaultSpecificDir
	}
	c.Paths.OutputDir = strings.TrimSpace(c.Paths.OutputDir)
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	// The marker may legitimately end with a space, so only full-blank
	// values fall back to the default.
	if strings.TrimSpace(c.Paths.OverlayMarker) == "" {
		c.Paths.OverlayMarker = defaultOverlayMarker
	}
}

func (c *Config) normalizeRender() {
	c.Render.KeyColor = strings.ToLower(strings.TrimSpace(c.Render.KeyColor))
	if c.Render.KeyColor == "" {
		c.Render.KeyColor = defaultKeyColor
	}
	c.Render.VideoCodec = strings.TrimSpace(c.Render.VideoCodec)
	if c.Render.VideoCodec == "" {
		c.Render.VideoCodec = defaultVideoCodec
	}
	c.Render.AudioCodec = strings.TrimSpace(c.Render.AudioCodec)
	if c.Render.AudioCodec == "" {
		c.Render.AudioCodec = defaultAudioCodec
	}
	c.Render.Preset = strings.ToLower(strings.TrimSpace(c.Render.Preset))
	if c.Render.Preset == "" {
		c.Render.Preset = defaultPreset
	}
	if c.Render.Threads == 0 {
		c.Render.Threads = defaultThreads
	}
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
