package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"endcard/internal/catalog"
	"endcard/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify external tools and report the run root layout",
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

			out := cmd.OutOrStdout()

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := status.Detail
				if !status.Available {
					state = "missing: " + status.Detail
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Status", "Purpose"}, rows))

			layout := catalog.NewLayout(root, cfg)
			overlayName := ""
			if overlay, found, err := catalog.FindOverlay(layout.Root, layout.OverlayMarker); err == nil && found {
				overlayName = overlay.Name
			}
			layoutRows := [][]string{
				{"Background dir", layout.BackgroundDir, yesNo(dirExists(layout.BackgroundDir))},
				{"Specific dir", layout.SpecificDir, yesNo(dirExists(layout.SpecificDir))},
				{"Output dir", layout.OutputDir, yesNo(dirExists(layout.OutputDir))},
				{"Overlay", layout.Root, yesNo(overlayName != "")},
			}
			fmt.Fprintln(out, renderTable([]string{"Layout", "Path", "Present"}, layoutRows))
			if overlayName != "" {
				fmt.Fprintf(out, "Overlay file: %s\n", overlayName)
			}

			if missing := deps.Missing(statuses); len(missing) > 0 {
				return fmt.Errorf("%d required tool(s) missing", len(missing))
			}
			fmt.Fprintln(out, "All required tools available")
			return nil
		},
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
