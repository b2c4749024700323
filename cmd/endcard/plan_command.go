package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"endcard/internal/catalog"
	"endcard/internal/naming"
	"endcard/internal/services"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [dir]",
		Short: "Preview which background each specific clip would composite over",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			layout := catalog.NewLayout(root, cfg)

			overlay, found, err := catalog.FindOverlay(layout.Root, layout.OverlayMarker)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "plan", "overlay", "scan run root", err)
			}
			if !found {
				return services.Wrap(services.ErrConfiguration, "plan", "overlay",
					fmt.Sprintf("no overlay starting with %q in %s", layout.OverlayMarker, layout.Root), nil)
			}
			if err := layout.CheckSourceDirs(); err != nil {
				return services.Wrap(services.ErrConfiguration, "plan", "source directories", "", err)
			}

			backgrounds, err := catalog.Scan(layout.BackgroundDir)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "plan", "background scan", "", err)
			}
			specifics, err := catalog.Scan(layout.SpecificDir)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "plan", "specific scan", "", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Overlay: %s\n", overlay.Name)
			if len(specifics) == 0 {
				fmt.Fprintln(out, "No specific clips found")
				return nil
			}

			rows := make([][]string, 0, len(specifics))
			planned := 0
			for _, clip := range specifics {
				title := ""
				background := ""
				switch {
				case clip.Prefix == "":
					background = "skip: no prefix"
				default:
					title = naming.DisplayTitle(clip.Prefix)
					match, ok := catalog.MatchBackground(backgrounds, clip.Prefix)
					if !ok {
						background = "skip: no background"
					} else {
						background = match.Name
						planned++
					}
				}
				rows = append(rows, []string{clip.Name, title, background})
			}
			fmt.Fprintln(out, renderTable([]string{"Clip", "Title", "Background"}, rows))
			fmt.Fprintf(out, "%d of %d clips would render\n", planned, len(specifics))
			return nil
		},
	}
}
