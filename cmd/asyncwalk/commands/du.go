package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/asyncwalk/internal/app"
)

func (c *CLI) newDuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "du [root]",
		Short: "Summarize disk usage per top-level entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exact, _ := cmd.Flags().GetBool("bytes")
			_, err := c.app.Du(cmd.Context(), app.DuOptions{
				CommonOptions: commonOptions(cmd, args),
				Bytes:         exact,
			})
			return err
		},
	}
	cmd.Flags().BoolP("bytes", "b", false, "Print exact byte counts")
	return cmd
}
