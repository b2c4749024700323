package main

import (
	"testing"

	"endcard/internal/testsupport"
)

func TestCheckReportsToolsAndLayout(t *testing.T) {
	isolateHome(t)
	testsupport.StubTools(t)
	root := testsupport.NewRunRoot(t, nil, nil, "Overlay Tela Final.mp4")

	out, _, err := runCLI(t, []string{"check", root}, "")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "FFprobe")
	requireContains(t, out, "Background dir")
	requireContains(t, out, "Overlay file: Overlay Tela Final.mp4")
	requireContains(t, out, "All required tools available")
}

func TestCheckFailsWhenToolsMissing(t *testing.T) {
	isolateHome(t)
	t.Setenv("PATH", t.TempDir())
	root := testsupport.NewRunRoot(t, nil, nil, "")

	out, _, err := runCLI(t, []string{"check", root}, "")
	if err == nil {
		t.Fatal("expected error when required tools are missing")
	}
	requireContains(t, err.Error(), "missing")
	requireContains(t, out, "not found")
}
