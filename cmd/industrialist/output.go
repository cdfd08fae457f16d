package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/display"
	"github.com/napolitain/industrialist-calc/internal/format"
	"github.com/napolitain/industrialist-calc/internal/models"
)

const (
	formatTable = "table"
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// selectionTitle names the dropdown choices, e.g. "Copper / None / None / 100m"
func selectionTitle(tables *models.Tables, sel calculator.Selection) string {
	return strings.Join([]string{
		tables.DrillHead(sel.DrillHead).DropdownText,
		tables.Acid(sel.Acid).DropdownText,
		tables.Oil(sel.Oil).DropdownText,
		sel.Depth.String(),
	}, " / ")
}

// efficiencyText colors the percentage in bands of the red to green gradient
func efficiencyText(efficiency float64) string {
	c := color.New(color.FgRed, color.Bold)
	switch {
	case efficiency >= 0.9:
		c = color.New(color.FgGreen, color.Bold)
	case efficiency >= 0.75:
		c = color.New(color.FgYellow, color.Bold)
	}
	return c.Sprint(display.Percent(efficiency))
}

func printMetricsTable(w io.Writer, tables *models.Tables, m *calculator.Metrics) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintf(w, "\n⛏️  %s\n\n", selectionTitle(tables, m.Selection))

	summary := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Metric", "Value"}),
	)
	_ = summary.Append([]string{"⛓️‍💥 Deterioration Rate", format.Sig(m.DeteriorationRate) + "%/s"})
	_ = summary.Append([]string{"🕗 Lifetime", format.HumanizeDuration(m.LifeTime)})
	_ = summary.Append([]string{"🔄 Replacement Time", format.HumanizeDuration(m.DowntimeSeconds())})
	_ = summary.Append([]string{"⏳ Cycle Time", format.HumanizeDuration(m.CycleTime)})
	_ = summary.Append([]string{"🔧 Efficiency", efficiencyText(m.Efficiency)})
	_ = summary.Render()

	fmt.Fprintln(w)

	drillHead := tables.DrillHead(m.Selection.DrillHead)
	rates := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Rate", "Average", "Active"}),
	)
	_ = rates.Append(rateRow(drillHead.InfoText, m.DrillHead, "u/s"))
	_ = rates.Append(rateRow(drillHead.MaterialInfoText, m.Materials, "u/s"))
	_ = rates.Append([]string{tables.Acid(m.Selection.Acid).InfoText, format.Sig(m.Acid.Average) + "L/s", format.Number(m.Acid.Active) + "L/s"})
	_ = rates.Append([]string{tables.Oil(m.Selection.Oil).InfoText, format.Sig(m.Oil.Average) + "L/s", format.Number(m.Oil.Active) + "L/s"})
	_ = rates.Append(rateRow("⚡ Power", m.Power, "MMF/s"))
	for _, y := range m.Yields {
		_ = rates.Append(rateRow(y.Name, y.Rate, "u/s"))
	}
	_ = rates.Render()
}

func rateRow(label string, r calculator.Rate, unit string) []string {
	return []string{label, format.Sig(r.Average) + unit, format.Sig(r.Active) + unit}
}

func printMetricsText(w io.Writer, tables *models.Tables, m *calculator.Metrics) {
	for _, line := range display.Render(tables, m).Lines() {
		fmt.Fprintln(w, line)
	}
}
