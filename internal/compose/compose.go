// Package compose plans render jobs: it turns a matched (background, overlay,
// specific) triple plus probe facts into the fully-resolved parameters the
// media engine executes.
package compose

import (
	"endcard/internal/config"
)

// Position is a top-left coordinate in output pixel space.
type Position struct {
	X float64
	Y float64
}

// Resolution is the output frame size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Params are the fixed render settings applied to every job of a run.
type Params struct {
	Duration         float64
	Resolution       Resolution
	SpecificWidth    int
	SpecificPosition Position
	KeyColor         string
	KeyThreshold     int
	FrameRate        int
	VideoCodec       string
	AudioCodec       string
	Preset           string
	Threads          int
}

// ParamsFromConfig copies the render section of the configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Duration:         cfg.Render.DurationSeconds,
		Resolution:       Resolution{Width: cfg.Render.Width, Height: cfg.Render.Height},
		SpecificWidth:    cfg.Render.SpecificWidth,
		SpecificPosition: Position{X: cfg.Render.SpecificX, Y: cfg.Render.SpecificY},
		KeyColor:         cfg.Render.KeyColor,
		KeyThreshold:     cfg.Render.KeyThreshold,
		FrameRate:        cfg.Render.FPS,
		VideoCodec:       cfg.Render.VideoCodec,
		AudioCodec:       cfg.Render.AudioCodec,
		Preset:           cfg.Render.Preset,
		Threads:          cfg.Render.Threads,
	}
}

// ProbedClip carries the probe facts planning needs about one input.
type ProbedClip struct {
	Path     string
	Duration float64
	HasAudio bool
}

// Layer is one input of the composite with its planned trim. Trim is the
// number of seconds of the clip that enter the composite; layers shorter
// than the job duration simply end early.
type Layer struct {
	Path     string
	Duration float64
	HasAudio bool
	Trim     float64
}

// Job is one fully-planned render. Built per specific clip at dispatch time
// and discarded after the render call returns.
type Job struct {
	ID         string
	Background Layer
	Overlay    Layer
	Specific   Layer
	OutputPath string

	Duration         float64
	Resolution       Resolution
	SpecificWidth    int
	SpecificPosition Position

	// KeySimilarity is the colorkey similarity derived from the configured
	// 0..255 threshold; KeyBlend stays 0 for a hard mask edge.
	KeyColor      string
	KeySimilarity float64
	KeyBlend      float64

	FrameRate  int
	VideoCodec string
	AudioCodec string
	Preset     string
	Threads    int
}

// NewJob plans a render: each layer is trimmed to min(duration, its own
// probed duration), with unknown durations left at the full job duration so
// the encoder's output clamp decides.
func NewJob(id string, params Params, background, overlay, specific ProbedClip, outputPath string) Job {
	return Job{
		ID:         id,
		Background: planLayer(background, params.Duration),
		Overlay:    planLayer(overlay, params.Duration),
		Specific:   planLayer(specific, params.Duration),
		OutputPath: outputPath,

		Duration:         params.Duration,
		Resolution:       params.Resolution,
		SpecificWidth:    params.SpecificWidth,
		SpecificPosition: params.SpecificPosition,

		KeyColor:      params.KeyColor,
		KeySimilarity: keySimilarity(params.KeyThreshold),
		KeyBlend:      0,

		FrameRate:  params.FrameRate,
		VideoCodec: params.VideoCodec,
		AudioCodec: params.AudioCodec,
		Preset:     params.Preset,
		Threads:    params.Threads,
	}
}

func planLayer(clip ProbedClip, duration float64) Layer {
	trim := duration
	if clip.Duration > 0 && clip.Duration < duration {
		trim = clip.Duration
	}
	return Layer{
		Path:     clip.Path,
		Duration: clip.Duration,
		HasAudio: clip.HasAudio,
		Trim:     trim,
	}
}

// keySimilarity maps a 0..255 per-channel distance threshold onto the
// colorkey filter's 0.01..1.0 similarity scale.
func keySimilarity(threshold int) float64 {
	similarity := float64(threshold) / 255
	if similarity < 0.01 {
		similarity = 0.01
	}
	if similarity > 1 {
		similarity = 1
	}
	return similarity
}

// Layers returns the three layers in z-order: background, overlay, specific.
func (j Job) Layers() []Layer {
	return []Layer{j.Background, j.Overlay, j.Specific}
}

// AudioLayerCount reports how many layers carry an audio stream.
func (j Job) AudioLayerCount() int {
	count := 0
	for _, layer := range j.Layers() {
		if layer.HasAudio {
			count++
		}
	}
	return count
}
