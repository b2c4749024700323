// Package catalog enumerates the clips of a run root: background candidates,
// specific clips, and the marker-named overlay file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"endcard/internal/config"
	"endcard/internal/naming"
)

// Clip references a media file on disk together with the grouping prefix
// derived from its base filename. Prefix is empty when the name has no
// derivable prefix.
type Clip struct {
	Path   string
	Name   string
	Prefix string
}

// Layout describes the resolved directories of a run root.
type Layout struct {
	Root          string
	BackgroundDir string
	SpecificDir   string
	OutputDir     string
	OverlayMarker string
}

// NewLayout anchors the configured directory names at root.
func NewLayout(root string, cfg *config.Config) Layout {
	return Layout{
		Root:          root,
		BackgroundDir: config.ResolveDir(root, cfg.Paths.BackgroundDir),
		SpecificDir:   config.ResolveDir(root, cfg.Paths.SpecificDir),
		OutputDir:     config.ResolveDir(root, cfg.Paths.OutputDir),
		OverlayMarker: cfg.Paths.OverlayMarker,
	}
}

// CheckSourceDirs verifies that the background and specific directories
// exist. The output directory is created later by the pipeline.
func (l Layout) CheckSourceDirs() error {
	for _, dir := range []string{l.BackgroundDir, l.SpecificDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("directory %q: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("directory %q: not a directory", dir)
		}
	}
	return nil
}

// Scan returns the supported clips directly inside dir, sorted by name.
// Subdirectories are not descended; each layer keeps its clips in a flat
// folder.
func Scan(dir string) ([]Clip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	clips := make([]Clip, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !naming.SupportedExtension(name) {
			continue
		}
		prefix, _ := naming.Prefix(name)
		clips = append(clips, Clip{
			Path:   filepath.Join(dir, name),
			Name:   name,
			Prefix: prefix,
		})
	}

	sort.Slice(clips, func(i, j int) bool { return clips[i].Name < clips[j].Name })
	return clips, nil
}

// FindOverlay locates the overlay clip: the first supported file in dir
// (sorted order) whose base name starts with marker. ok reports whether one
// was found; err reports directory read failures only.
func FindOverlay(dir, marker string) (Clip, bool, error) {
	clips, err := Scan(dir)
	if err != nil {
		return Clip{}, false, err
	}
	for _, clip := range clips {
		if naming.HasPrefix(clip.Name, marker) {
			return clip, true, nil
		}
	}
	return Clip{}, false, nil
}

// MatchBackground selects the background for a specific clip's prefix: the
// first candidate (in sorted order) whose name starts with the prefix.
func MatchBackground(backgrounds []Clip, prefix string) (Clip, bool) {
	if prefix == "" {
		return Clip{}, false
	}
	for _, candidate := range backgrounds {
		if naming.HasPrefix(candidate.Name, prefix) {
			return candidate, true
		}
	}
	return Clip{}, false
}
