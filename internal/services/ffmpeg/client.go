package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"endcard/internal/compose"
	"endcard/internal/services"
)

var commandContext = exec.CommandContext

// maxStderrTail bounds how much captured tool output lands in an error.
const maxStderrTail = 2048

// ProgressUpdate captures one ffmpeg progress report.
type ProgressUpdate struct {
	Percent float64
	Seconds float64
	FPS     float64
	Speed   float64
}

// Client defines composite rendering behaviour.
type Client interface {
	Render(ctx context.Context, job compose.Job, progress func(ProgressUpdate)) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Render launches ffmpeg for one planned job and streams progress reports
// until the encode finishes.
func (c *CLI) Render(ctx context.Context, job compose.Job, progress func(ProgressUpdate)) error {
	if job.OutputPath == "" {
		return errors.New("output path required")
	}
	for _, layer := range job.Layers() {
		if layer.Path == "" {
			return errors.New("layer path required")
		}
	}

	cmd := commandContext(ctx, c.binary, Command(job)...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "ffmpeg", "start "+c.binary, err)
	}

	reports := progressState{duration: job.Duration}
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if update, ok := reports.consume(scanner.Text()); ok && progress != nil {
			progress(update)
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "ffmpeg", stderrTail(stderr.String()), err)
	}
	if scanErr != nil {
		return fmt.Errorf("read ffmpeg progress: %w", scanErr)
	}
	return nil
}

var _ Client = (*CLI)(nil)

// progressState folds the key=value records ffmpeg emits with -progress and
// produces one ProgressUpdate per record boundary.
type progressState struct {
	duration float64
	seconds  float64
	fps      float64
	speed    float64
}

func (p *progressState) consume(line string) (ProgressUpdate, bool) {
	key, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found {
		return ProgressUpdate{}, false
	}
	value = strings.TrimSpace(value)
	switch key {
	case "out_time_us", "out_time_ms":
		// Both report microseconds.
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			p.seconds = float64(v) / 1e6
		}
	case "fps":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			p.fps = v
		}
	case "speed":
		if v, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil {
			p.speed = v
		}
	case "progress":
		return ProgressUpdate{
			Percent: p.percent(value),
			Seconds: p.seconds,
			FPS:     p.fps,
			Speed:   p.speed,
		}, true
	}
	return ProgressUpdate{}, false
}

func (p *progressState) percent(marker string) float64 {
	if marker == "end" {
		return 100
	}
	if p.duration <= 0 {
		return 0
	}
	percent := p.seconds / p.duration * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func stderrTail(output string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return "no tool output"
	}
	if len(output) > maxStderrTail {
		output = output[len(output)-maxStderrTail:]
		if idx := strings.IndexByte(output, '\n'); idx >= 0 && idx < len(output)-1 {
			output = output[idx+1:]
		}
	}
	return strings.ReplaceAll(output, "\n", " | ")
}
