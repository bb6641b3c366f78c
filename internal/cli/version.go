package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/regiontime/region"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			state := "enabled"
			if !region.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "regiontime %s (instrumentation %s)\n", version, state)
		},
	}
}
