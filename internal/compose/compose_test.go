package compose_test

import (
	"math"
	"testing"

	"endcard/internal/compose"
	"endcard/internal/config"
)

func testParams() compose.Params {
	cfg := config.Default()
	return compose.ParamsFromConfig(&cfg)
}

func TestNewJobTrimsLayers(t *testing.T) {
	params := testParams()
	job := compose.NewJob("job-1", params,
		compose.ProbedClip{Path: "bg.mp4", Duration: 45, HasAudio: true},
		compose.ProbedClip{Path: "overlay.mp4", Duration: 12.5, HasAudio: false},
		compose.ProbedClip{Path: "specific.mp4", Duration: 20, HasAudio: true},
		"out.mp4",
	)

	if job.ID != "job-1" {
		t.Fatalf("unexpected job id %q", job.ID)
	}
	if job.OutputPath != "out.mp4" {
		t.Fatalf("unexpected output path %q", job.OutputPath)
	}
	if job.Background.Trim != params.Duration {
		t.Fatalf("background trim = %v, want %v", job.Background.Trim, params.Duration)
	}
	if job.Overlay.Trim != 12.5 {
		t.Fatalf("overlay trim = %v, want 12.5", job.Overlay.Trim)
	}
	if job.Specific.Trim != 20 {
		t.Fatalf("specific trim = %v, want 20", job.Specific.Trim)
	}
}

func TestNewJobUnknownDurationKeepsFullTrim(t *testing.T) {
	params := testParams()
	job := compose.NewJob("job-2", params,
		compose.ProbedClip{Path: "bg.mp4"},
		compose.ProbedClip{Path: "overlay.mp4", Duration: -1},
		compose.ProbedClip{Path: "specific.mp4", Duration: 0},
		"out.mp4",
	)

	for _, layer := range job.Layers() {
		if layer.Trim != params.Duration {
			t.Fatalf("layer %q trim = %v, want %v", layer.Path, layer.Trim, params.Duration)
		}
	}
}

func TestNewJobKeySimilarity(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		want      float64
	}{
		{name: "default threshold", threshold: 10, want: 10.0 / 255},
		{name: "zero clamps to filter minimum", threshold: 0, want: 0.01},
		{name: "full range", threshold: 255, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := testParams()
			params.KeyThreshold = tc.threshold
			job := compose.NewJob("job", params,
				compose.ProbedClip{Path: "bg.mp4"},
				compose.ProbedClip{Path: "overlay.mp4"},
				compose.ProbedClip{Path: "specific.mp4"},
				"out.mp4",
			)
			if math.Abs(job.KeySimilarity-tc.want) > 1e-9 {
				t.Fatalf("similarity = %v, want %v", job.KeySimilarity, tc.want)
			}
			if job.KeyBlend != 0 {
				t.Fatalf("blend = %v, want 0", job.KeyBlend)
			}
		})
	}
}

func TestAudioLayerCount(t *testing.T) {
	params := testParams()
	job := compose.NewJob("job", params,
		compose.ProbedClip{Path: "bg.mp4", HasAudio: true},
		compose.ProbedClip{Path: "overlay.mp4"},
		compose.ProbedClip{Path: "specific.mp4", HasAudio: true},
		"out.mp4",
	)
	if got := job.AudioLayerCount(); got != 2 {
		t.Fatalf("audio layer count = %d, want 2", got)
	}

	layers := job.Layers()
	if len(layers) != 3 || layers[0].Path != "bg.mp4" || layers[2].Path != "specific.mp4" {
		t.Fatalf("unexpected layer order: %+v", layers)
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.DurationSeconds = 30
	cfg.Render.SpecificX = 100.25
	cfg.Render.Threads = 8

	params := compose.ParamsFromConfig(&cfg)
	if params.Duration != 30 {
		t.Fatalf("duration = %v, want 30", params.Duration)
	}
	if params.SpecificPosition.X != 100.25 {
		t.Fatalf("specific x = %v, want 100.25", params.SpecificPosition.X)
	}
	if params.Threads != 8 {
		t.Fatalf("threads = %d, want 8", params.Threads)
	}
	if params.Resolution != (compose.Resolution{Width: 1280, Height: 720}) {
		t.Fatalf("unexpected resolution %+v", params.Resolution)
	}
}
