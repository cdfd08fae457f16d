package main

import (
	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive drill calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := a.calc.Tables()
			base, err := a.cfg.Defaults.Selection(tables)
			if err != nil {
				return err
			}
			s, err := sel.apply(tables, base)
			if err != nil {
				return err
			}

			a.logger.Printf("Starting calculator at %s/%s/%s/%d", s.DrillHead, s.Acid, s.Oil, s.Depth)
			return tui.Run(a.calc, s)
		},
	}

	sel.register(cmd)
	return cmd
}
