package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [root]",
		Short: "Print a content digest of every regular file below root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Digest(cmd.Context(), commonOptions(cmd, args))
			return err
		},
	}
}
