package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/nconsole/core"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the supported levels from most to least severe",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for l := core.ErrorLevel; l <= core.TraceLevel; l++ {
				fmt.Fprintf(cmd.OutOrStdout(), "%c %s\n", l.Letter(), l)
			}
		},
	}
}
