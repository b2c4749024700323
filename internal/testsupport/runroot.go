// Package testsupport provides shared fixtures for endcard tests: run-root
// builders and stub engine binaries.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"endcard/internal/config"
)

// WriteMedia creates a placeholder clip at path.
func WriteMedia(t testing.TB, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("media"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NewRunRoot builds a run root using the default directory names, populated
// with the given clips plus an overlay file when overlayName is non-empty.
func NewRunRoot(t testing.TB, backgrounds, specifics []string, overlayName string) string {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	backgroundDir := config.ResolveDir(root, cfg.Paths.BackgroundDir)
	specificDir := config.ResolveDir(root, cfg.Paths.SpecificDir)

	for _, dir := range []string{backgroundDir, specificDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for _, name := range backgrounds {
		WriteMedia(t, filepath.Join(backgroundDir, name))
	}
	for _, name := range specifics {
		WriteMedia(t, filepath.Join(specificDir, name))
	}
	if overlayName != "" {
		WriteMedia(t, filepath.Join(root, overlayName))
	}
	return root
}
