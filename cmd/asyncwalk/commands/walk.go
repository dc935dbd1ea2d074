package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/asyncwalk/internal/app"
)

func (c *CLI) newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [root]",
		Short: "Stream every entry below root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, _ := cmd.Flags().GetBool("stat")
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			ci, _ := cmd.Flags().GetBool("ci")

			opts := app.WalkOptions{
				CommonOptions: commonOptions(cmd, args),
				Stat:          stat,
				FailFast:      failFast,
			}
			// --ci is shorthand for --output-mode=linear.
			if ci {
				opts.OutputMode = "linear"
			}
			return c.app.Walk(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("stat", "s", false, "Fetch and print metadata for every entry")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first error")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
