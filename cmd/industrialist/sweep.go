package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/format"
	"github.com/napolitain/industrialist-calc/internal/models"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		pins   selectionFlags
		sortBy string
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Rank every drill configuration",
		Long: `Computes every combination of drill head, acid, oil and depth and ranks them.

Sort keys: efficiency, lifetime, deterioration (lowest first) and
yield:<resource> (average output of that resource).
Selection flags pin that part of the configuration.`,
		Example: `  industrialist sweep --sort yield:diamond --limit 5
  industrialist sweep --depth 750 --sort lifetime`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.outputFormat(output)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0, got %d", limit)
			}

			tables := a.calc.Tables()
			key, err := calculator.ParseSortKey(tables, sortBy)
			if err != nil {
				return err
			}
			filter, err := pins.filter(tables)
			if err != nil {
				return err
			}

			results := a.calc.Sweep(filter, key)
			a.logger.Printf("Ranked %d configurations by %s", len(results), key)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			w := cmd.OutOrStdout()
			switch f {
			case formatJSON:
				return writeJSON(w, results)
			case formatYAML:
				return writeYAML(w, results)
			case formatText:
				printSweepText(w, tables, key, results)
			default:
				printSweepTable(w, tables, key, results)
			}
			return nil
		},
	}

	pins.register(cmd)
	cmd.Flags().StringVar(&sortBy, "sort", string(calculator.SortEfficiency), "sort key: efficiency, lifetime, deterioration or yield:<resource>")
	cmd.Flags().IntVar(&limit, "limit", 10, "show at most this many configurations (0 for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, text, json or yaml")
	return cmd
}

// scoreText renders a score in the unit of its sort key
func scoreText(key calculator.SortKey, score float64) string {
	switch key.Kind {
	case calculator.SortLifetime:
		return format.HumanizeDuration(score)
	case calculator.SortDeterioration:
		return format.Sig(score) + "%/s"
	case calculator.SortYield:
		return format.Sig(score) + "u/s"
	default:
		return format.Sig(score*100) + "%"
	}
}

func printSweepTable(w io.Writer, tables *models.Tables, key calculator.SortKey, results []calculator.Result) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintf(w, "\n📊 Best configurations by %s\n\n", key)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Drill Head", "Acid", "Oil", "Depth", "Lifetime", "Cycle", "Efficiency", "Score"}),
	)
	for _, r := range results {
		m := r.Metrics
		row := []string{
			fmt.Sprintf("%d", r.Rank),
			tables.DrillHead(m.Selection.DrillHead).DropdownText,
			tables.Acid(m.Selection.Acid).DropdownText,
			tables.Oil(m.Selection.Oil).DropdownText,
			m.Selection.Depth.String(),
			format.HumanizeDuration(m.LifeTime),
			format.HumanizeDuration(m.CycleTime),
			efficiencyText(m.Efficiency),
			scoreText(key, r.Score),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func printSweepText(w io.Writer, tables *models.Tables, key calculator.SortKey, results []calculator.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%d. %s: %s\n", r.Rank, selectionTitle(tables, r.Metrics.Selection), scoreText(key, r.Score))
	}
}
