package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/asyncwalk/internal/adapters/watcher"
	"go.trai.ch/asyncwalk/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Print changes below root until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				CommonOptions: commonOptions(cmd, args),
				Debounce:      debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Coalesce events within this window")
	return cmd
}
