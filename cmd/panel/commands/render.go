package commands

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/panel"
)

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Load the schema document and print the panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			load(cmd.Context())
			c := panel.NewComposer(facade, func(units []panel.RenderUnit) {
				printUnits(cmd.OutOrStdout(), units)
			})
			c.Start()
			c.Stop()
			return nil
		},
	}
}
