package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"endcard/internal/catalog"
	"endcard/internal/services/ffmpeg"
)

func progressWanted() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderProgress draws one bar per clip, fed by the engine's progress
// callbacks. A new clip finishes the previous bar and starts a fresh one.
type renderProgress struct {
	out     io.Writer
	current string
	bar     *progressbar.ProgressBar
}

func newRenderProgress(out io.Writer) *renderProgress {
	return &renderProgress{out: out}
}

func (p *renderProgress) Observe(clip catalog.Clip, update ffmpeg.ProgressUpdate) {
	if p == nil {
		return
	}
	if p.bar == nil || p.current != clip.Name {
		p.Close()
		p.current = clip.Name
		p.bar = newClipBar(p.out, clip.Name)
	}
	percent := int(update.Percent + 0.5)
	if percent > 100 {
		percent = 100
	}
	_ = p.bar.Set(percent)
}

func (p *renderProgress) Close() {
	if p == nil || p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}

func newClipBar(out io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
