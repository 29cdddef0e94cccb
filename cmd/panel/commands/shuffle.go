package commands

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/panel"
)

func shuffleCmd() *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Print the panel, then reshuffle its order and print it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			load(cmd.Context())
			c := panel.NewComposer(facade, func(units []panel.RenderUnit) {
				printUnits(cmd.OutOrStdout(), units)
			})
			c.Start()
			defer c.Stop()
			for range times {
				facade.ShuffleOrder()
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of shuffles")
	return cmd
}
