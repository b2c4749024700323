package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"endcard/internal/catalog"
	"endcard/internal/logging"
	"endcard/internal/pipeline"
	"endcard/internal/services/ffmpeg"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Render an end screen for every specific clip in the run root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, logFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			layout := catalog.NewLayout(root, cfg)
			engine := ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary()))

			opts := []pipeline.Option{pipeline.WithDryRun(dryRun)}
			var bar *renderProgress
			if !dryRun && progressWanted() {
				bar = newRenderProgress(os.Stdout)
				opts = append(opts, pipeline.WithProgress(bar.Observe))
			}

			stats, err := pipeline.New(cfg, layout, engine, logger, opts...).Run(signalCtx)
			if bar != nil {
				bar.Close()
			}
			if err != nil {
				return err
			}

			printRunSummary(cmd.OutOrStdout(), stats, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan jobs and log engine commands without rendering")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Tee run logs to the given file")
	return cmd
}

func printRunSummary(out io.Writer, stats pipeline.Stats, dryRun bool) {
	if len(stats.Items) > 0 {
		rows := make([][]string, 0, len(stats.Items))
		for _, item := range stats.Items {
			detail := item.Background
			if item.Status != pipeline.ItemRendered {
				detail = item.Reason
			}
			rows = append(rows, []string{item.Clip.Name, string(item.Status), detail})
		}
		fmt.Fprintln(out, renderTable([]string{"Clip", "Result", "Detail"}, rows))
	}

	verb := "rendered"
	if dryRun {
		verb = "planned"
	}
	fmt.Fprintf(out, "Done: %d of %d clips %s", stats.Rendered, stats.Total, verb)
	if stats.Skipped > 0 || stats.Failed > 0 {
		fmt.Fprintf(out, " (%d skipped, %d failed)", stats.Skipped, stats.Failed)
	}
	fmt.Fprintln(out)
}
