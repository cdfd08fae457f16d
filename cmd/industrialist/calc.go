package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		sel    selectionFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate drill lifetime, efficiency and yields",
		Long: `Calculates the mineshaft drill metrics for one selection.

Flags that are not given fall back to the configured defaults
(copper drill head, no acid, no oil, 100m).`,
		Example: `  industrialist calc --drill-head steel --acid nitric --oil machineOil --depth 750
  industrialist calc --depth 1000 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.outputFormat(output)
			if err != nil {
				return err
			}

			tables := a.calc.Tables()
			base, err := a.cfg.Defaults.Selection(tables)
			if err != nil {
				return err
			}
			s, err := sel.apply(tables, base)
			if err != nil {
				return err
			}

			m := a.calc.Compute(s)
			a.logger.Printf("Computed %s/%s/%s/%d: efficiency %.4f", s.DrillHead, s.Acid, s.Oil, s.Depth, m.Efficiency)

			w := cmd.OutOrStdout()
			switch f {
			case formatJSON:
				return writeJSON(w, m)
			case formatYAML:
				return writeYAML(w, m)
			case formatText:
				printMetricsText(w, tables, m)
			default:
				printMetricsTable(w, tables, m)
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", fmt.Sprintf("output format: %s, %s, %s or %s", formatTable, formatText, formatJSON, formatYAML))
	return cmd
}
