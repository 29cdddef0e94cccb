package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zoobzio/panel"
)

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Set the selector's chosen variant and print the panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid selection %q: %w", args[0], err)
			}

			load(cmd.Context())
			sel, ok := facade.SelectorWidget()
			if !ok {
				return errors.New("panel has no selector")
			}

			out := cmd.OutOrStdout()
			prev := sel.SelectedID.Value()
			b := panel.Bind(sel.SelectedID, func(n int) {
				fmt.Fprintf(out, "selector: %d -> %d\n", prev, n)
				prev = n
			})
			defer b.Unbind()

			facade.SetSelectedID(id)
			printUnits(out, panel.Compose(facade.CurrentOrder().Value(), facade))
			return nil
		},
	}
}
