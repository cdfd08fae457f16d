package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/format"
	"github.com/napolitain/industrialist-calc/internal/models"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Show the drill head, acid, oil and depth tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printTables(cmd.OutOrStdout(), a.calc.Tables())
		},
	}
}

// multiplierDepths are the depths multiplier curves are evaluated at, in table order
func multiplierDepths(tables *models.Tables) []models.DepthID {
	var out []models.DepthID
	seen := make(map[models.DepthID]bool)
	for _, d := range tables.DepthIDs() {
		md := d.MultiplierDepth()
		if !seen[md] {
			seen[md] = true
			out = append(out, md)
		}
	}
	return out
}

func curveRow(c models.Curve, depths []models.DepthID) []string {
	row := make([]string, len(depths))
	for i, d := range depths {
		row[i] = "×" + format.Number(c.At(d))
	}
	return row
}

func printTables(w io.Writer, tables *models.Tables) {
	titleColor := color.New(color.FgCyan, color.Bold)
	depths := multiplierDepths(tables)
	depthHeaders := make([]string, len(depths))
	for i, d := range depths {
		depthHeaders[i] = d.String()
	}

	titleColor.Fprintln(w, "\n🔩 Drill Heads (deterioration multiplier)")
	heads := tablewriter.NewTable(w,
		tablewriter.WithHeader(append([]string{"ID", "Name", "Material"}, depthHeaders...)),
	)
	for _, h := range tables.DrillHeads() {
		row := []string{string(h.ID), h.InfoText, h.MaterialInfoText + " ×" + format.Number(h.MaterialAmount)}
		_ = heads.Append(append(row, curveRow(h.Multi, depths)...))
	}
	_ = heads.Render()

	titleColor.Fprintln(w, "\n🧪 Acids (deterioration multiplier)")
	acids := tablewriter.NewTable(w,
		tablewriter.WithHeader(append([]string{"ID", "Name", "Rate"}, depthHeaders...)),
	)
	for _, ac := range tables.Acids() {
		row := []string{string(ac.ID), ac.InfoText, format.Number(ac.Rate) + "L/s"}
		_ = acids.Append(append(row, curveRow(ac.Multi, depths)...))
	}
	_ = acids.Render()

	titleColor.Fprintln(w, "\n🛢️ Oils")
	oils := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Rate", "Effect"}),
	)
	for _, o := range tables.Oils() {
		effect := ""
		if o.IsMachineOil() {
			effect = "2× travel speed, +10% yield"
		}
		_ = oils.Append([]string{string(o.ID), o.InfoText, format.Number(o.Rate) + "L/s", effect})
	}
	_ = oils.Render()

	titleColor.Fprintln(w, "\n⛏️  Depths (yield per second while drilling)")
	yields := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Depth", "Multipliers From", "Yields"}),
	)
	for _, d := range tables.Depths() {
		parts := make([]string, len(d.Yields))
		for i, y := range d.Yields {
			parts[i] = fmt.Sprintf("%s %s", tables.ResourceName(y.Resource), format.Number(y.Amount))
		}
		_ = yields.Append([]string{d.ID.String(), d.ID.MultiplierDepth().String(), strings.Join(parts, ", ")})
	}
	_ = yields.Render()
}
