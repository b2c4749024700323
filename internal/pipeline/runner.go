// Package pipeline orchestrates the batch: enumerate specific clips, match
// each to a background by prefix, and render the three-layer composite through
// the media engine, with per-item failure isolation and summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"endcard/internal/catalog"
	"endcard/internal/compose"
	"endcard/internal/config"
	"endcard/internal/deps"
	"endcard/internal/logging"
	"endcard/internal/media/ffprobe"
	"endcard/internal/services"
	"endcard/internal/services/ffmpeg"
)

// inspect is swapped in tests.
var inspect = ffprobe.Inspect

// ProgressFunc receives engine progress reports for the clip being rendered.
type ProgressFunc func(clip catalog.Clip, update ffmpeg.ProgressUpdate)

// Runner executes one batch over a run-root layout.
type Runner struct {
	cfg        *config.Config
	layout     catalog.Layout
	engine     ffmpeg.Client
	logger     *slog.Logger
	onProgress ProgressFunc
	dryRun     bool
	probes     map[string]probeEntry
	sampler    *logging.ProgressSampler
}

// probeEntry caches one ffprobe verdict; backgrounds and the overlay recur
// across items.
type probeEntry struct {
	clip compose.ProbedClip
	err  error
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress registers a callback for engine progress reports.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.onProgress = fn
	}
}

// WithDryRun plans and logs every job without invoking the engine.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// New constructs a batch runner.
func New(cfg *config.Config, layout catalog.Layout, engine ffmpeg.Client, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		cfg:     cfg,
		layout:  layout,
		engine:  engine,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
		probes:  make(map[string]probeEntry),
		sampler: logging.NewProgressSampler(10),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run executes the batch. The returned error is non-nil only for run-level
// failures: a missing overlay, missing source directories, an unusable output
// directory, or cancellation. Per-item failures are recorded in Stats, logged,
// and never abort the batch.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	ctx = services.WithRequestID(ctx, uuid.NewString())
	log := logging.WithContext(ctx, r.logger)

	var stats Stats

	overlay, found, err := catalog.FindOverlay(r.layout.Root, r.layout.OverlayMarker)
	if err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "preflight", "overlay", "scan run root", err)
	}
	if !found {
		return stats, services.Wrap(services.ErrConfiguration, "preflight", "overlay",
			fmt.Sprintf("no overlay starting with %q in %s", r.layout.OverlayMarker, r.layout.Root), nil)
	}

	if err := r.layout.CheckSourceDirs(); err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "preflight", "source directories", "", err)
	}

	r.warnMissingTools(log)

	if err := r.ensureOutputDir(log); err != nil {
		return stats, err
	}

	backgrounds, err := catalog.Scan(r.layout.BackgroundDir)
	if err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "preflight", "background scan", "", err)
	}
	specifics, err := catalog.Scan(r.layout.SpecificDir)
	if err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "preflight", "specific scan", "", err)
	}

	stats.Total = len(specifics)
	r.logHeader(log, overlay, len(backgrounds), len(specifics))

	if len(specifics) == 0 {
		log.Warn("no specific clips found", logging.String("dir", r.layout.SpecificDir))
		return stats, nil
	}

	params := compose.ParamsFromConfig(r.cfg)
	for index, clip := range specifics {
		if ctx.Err() != nil {
			log.Warn("interrupted", logging.Int("remaining", len(specifics)-index))
			r.logSummary(log, stats)
			return stats, ctx.Err()
		}
		stats.record(r.processClip(ctx, params, clip, backgrounds, overlay, index+1, stats.Total))
	}

	r.logSummary(log, stats)
	return stats, nil
}

func (r *Runner) processClip(ctx context.Context, params compose.Params, clip catalog.Clip, backgrounds []catalog.Clip, overlay catalog.Clip, position, total int) Item {
	ctx = services.WithClip(ctx, clip.Name)
	log := logging.WithContext(ctx, r.logger)
	log.Info("processing clip", logging.Int("position", position), logging.Int("total", total))

	item, err := r.renderClip(ctx, params, clip, backgrounds, overlay)
	switch {
	case err == nil:
		if r.dryRun {
			log.Info("dry run, render not invoked", logging.String("output", item.Output))
		} else {
			log.Info("clip rendered",
				logging.String("output", item.Output),
				logging.Duration("elapsed", item.Elapsed))
		}
	case services.IsSkip(err):
		item.Status = ItemSkipped
		item.Reason = err.Error()
		log.Warn("clip skipped", logging.Error(err))
	default:
		item.Status = ItemFailed
		item.Reason = err.Error()
		log.Error("clip failed", logging.Error(err))
	}
	return item
}

func (r *Runner) renderClip(ctx context.Context, params compose.Params, clip catalog.Clip, backgrounds []catalog.Clip, overlay catalog.Clip) (Item, error) {
	item := Item{Clip: clip, Status: ItemRendered}

	if clip.Prefix == "" {
		return item, services.Wrap(services.ErrNotFound, "match", "prefix",
			fmt.Sprintf("cannot derive a prefix from %q", clip.Name), nil)
	}

	background, ok := catalog.MatchBackground(backgrounds, clip.Prefix)
	if !ok {
		return item, services.Wrap(services.ErrNotFound, "match", "background",
			fmt.Sprintf("no background starting with %q", clip.Prefix), nil)
	}
	item.Background = background.Name

	ctx = services.WithStage(ctx, "render")
	log := logging.WithContext(ctx, r.logger)

	backgroundClip, err := r.probeClip(ctx, background.Path)
	if err != nil {
		return item, err
	}
	overlayClip, err := r.probeClip(ctx, overlay.Path)
	if err != nil {
		return item, err
	}
	specificClip, err := r.probeClip(ctx, clip.Path)
	if err != nil {
		return item, err
	}

	job := compose.NewJob(uuid.NewString(), params, backgroundClip, overlayClip, specificClip,
		filepath.Join(r.layout.OutputDir, clip.Name))
	item.Output = job.OutputPath

	log.Info("rendering composite",
		logging.String("job_id", job.ID),
		logging.String("background", background.Name),
		logging.String("overlay", overlay.Name),
		logging.Float64("duration_s", job.Duration))

	if r.dryRun {
		log.Info("planned command", logging.String("command", ffmpeg.Preview(r.cfg.FFmpegBinary(), job)))
		return item, nil
	}

	r.sampler.Reset()
	start := time.Now()
	err = r.engine.Render(ctx, job, func(update ffmpeg.ProgressUpdate) {
		if r.onProgress != nil {
			r.onProgress(clip, update)
		}
		if r.sampler.ShouldLog(update.Percent, "render") {
			log.Debug("render progress",
				logging.Float64("percent", update.Percent),
				logging.Float64("seconds", update.Seconds),
				logging.Float64("speed", update.Speed))
		}
	})
	item.Elapsed = time.Since(start)
	if err != nil {
		return item, err
	}
	return item, nil
}

func (r *Runner) probeClip(ctx context.Context, path string) (compose.ProbedClip, error) {
	if entry, ok := r.probes[path]; ok {
		return entry.clip, entry.err
	}

	var entry probeEntry
	result, err := inspect(ctx, r.cfg.FFprobeBinary(), path)
	switch {
	case err != nil:
		entry.err = services.Wrap(services.ErrExternalTool, "probe", "ffprobe", path, err)
	case !result.HasVideo():
		entry.err = services.Wrap(services.ErrValidation, "probe", "ffprobe",
			fmt.Sprintf("%s has no video stream", path), nil)
	default:
		entry.clip = compose.ProbedClip{
			Path:     path,
			Duration: result.DurationSeconds(),
			HasAudio: result.HasAudio(),
		}
	}
	r.probes[path] = entry
	return entry.clip, entry.err
}

// ensureOutputDir creates the output directory when absent. It runs after the
// overlay and source-dir checks so a failed preflight leaves the tree
// untouched.
func (r *Runner) ensureOutputDir(log *slog.Logger) error {
	info, err := os.Stat(r.layout.OutputDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return services.Wrap(services.ErrConfiguration, "preflight", "output directory",
				fmt.Sprintf("%s is not a directory", r.layout.OutputDir), nil)
		}
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(r.layout.OutputDir, 0o755); err != nil {
			return services.Wrap(services.ErrConfiguration, "preflight", "output directory", "", err)
		}
		log.Info("output directory created", logging.String("dir", r.layout.OutputDir))
		return nil
	default:
		return services.Wrap(services.ErrConfiguration, "preflight", "output directory", "", err)
	}
}

// warnMissingTools reports unavailable binaries without failing the run; each
// item would fail at its own boundary anyway, and the exit contract reserves
// nonzero for layout problems.
func (r *Runner) warnMissingTools(log *slog.Logger) {
	for _, status := range deps.Missing(deps.CheckBinaries(deps.Requirements(r.cfg))) {
		log.Warn("external tool unavailable",
			logging.String("tool", status.Name),
			logging.String("detail", status.Detail))
	}
}

func (r *Runner) logHeader(log *slog.Logger, overlay catalog.Clip, backgrounds, specifics int) {
	log.Info("batch starting",
		logging.String("background_dir", r.layout.BackgroundDir),
		logging.String("specific_dir", r.layout.SpecificDir),
		logging.String("output_dir", r.layout.OutputDir),
		logging.String("overlay", overlay.Name),
		logging.Int("backgrounds", backgrounds),
		logging.Int("specific_clips", specifics),
		logging.Float64("duration_s", r.cfg.Render.DurationSeconds),
		logging.String("resolution", fmt.Sprintf("%dx%d", r.cfg.Render.Width, r.cfg.Render.Height)),
		logging.Int("specific_width", r.cfg.Render.SpecificWidth),
		logging.String("specific_position", fmt.Sprintf("%g,%g", r.cfg.Render.SpecificX, r.cfg.Render.SpecificY)),
		logging.Bool("dry_run", r.dryRun))
}

func (r *Runner) logSummary(log *slog.Logger, stats Stats) {
	log.Info("batch finished",
		logging.Int("rendered", stats.Rendered),
		logging.Int("skipped", stats.Skipped),
		logging.Int("failed", stats.Failed),
		logging.Int("total", stats.Total))
}
