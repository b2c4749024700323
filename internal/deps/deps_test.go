package deps

import (
	"os"
	"path/filepath"
	"testing"

	"endcard/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Detail != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Detail)
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FFmpeg = "/opt/media/ffmpeg"
	cfg.Tools.FFprobe = "/opt/media/ffprobe"

	reqs := Requirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/media/ffmpeg" {
		t.Fatalf("unexpected ffmpeg command %q", reqs[0].Command)
	}
	if reqs[1].Command != "/opt/media/ffprobe" {
		t.Fatalf("unexpected ffprobe command %q", reqs[1].Command)
	}
	for _, req := range reqs {
		if req.Optional {
			t.Fatalf("requirement %s should be mandatory", req.Name)
		}
	}
}

func TestMissing(t *testing.T) {
	statuses := []Status{
		{Name: "FFmpeg", Available: true},
		{Name: "FFprobe", Available: false},
		{Name: "Extra", Available: false, Optional: true},
	}

	missing := Missing(statuses)
	if len(missing) != 1 {
		t.Fatalf("expected 1 missing requirement, got %d", len(missing))
	}
	if missing[0].Name != "FFprobe" {
		t.Fatalf("unexpected missing requirement %q", missing[0].Name)
	}
}
