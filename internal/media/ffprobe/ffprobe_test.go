package ffprobe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const samplePayload = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1280, "height": 720, "duration": "19.980000"},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "sample_rate": "44100", "channels": 2, "duration": "20.010000"}
  ],
  "format": {"filename": "Autoc20.mp4", "nb_streams": 2, "duration": "20.010000", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"}
}`

func TestParse(t *testing.T) {
	result, err := Parse([]byte(samplePayload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !result.HasVideo() {
		t.Fatal("expected video stream")
	}
	if !result.HasAudio() {
		t.Fatal("expected audio stream")
	}
	if w, h := result.Dimensions(); w != 1280 || h != 720 {
		t.Fatalf("unexpected dimensions: %dx%d", w, h)
	}
	if got := result.DurationSeconds(); got != 20.01 {
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDurationFallsBackToStreams(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", Duration: "12.5"},
			{CodecType: "audio", Duration: "11.0"},
		},
	}
	if got := result.DurationSeconds(); got != 12.5 {
		t.Fatalf("expected stream fallback duration 12.5, got %v", got)
	}

	empty := Result{Format: Format{Duration: "bad"}}
	if got := empty.DurationSeconds(); got != 0 {
		t.Fatalf("expected 0 for unparseable duration, got %v", got)
	}
}

func TestDimensionsWithoutVideo(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "audio"}}}
	if w, h := result.Dimensions(); w != 0 || h != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", w, h)
	}
	if result.HasVideo() {
		t.Fatal("expected no video stream")
	}
}

func TestInspectRunsBinary(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffprobe")
	script := fmt.Sprintf("#!/bin/sh\ncat <<'JSON'\n%s\nJSON\n", samplePayload)
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	result, err := Inspect(context.Background(), stub, "Autoc20.mp4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if got := result.Format.Filename; got != "Autoc20.mp4" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestInspectFailure(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffprobe")
	script := "#!/bin/sh\necho 'No such file or directory' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	if _, err := Inspect(context.Background(), stub, "missing.mp4"); err == nil {
		t.Fatal("expected inspect error")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
