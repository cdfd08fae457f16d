// Package display turns calculator metrics into the labels shown to the user.
package display

import (
	"fmt"
	"math"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/format"
	"github.com/napolitain/industrialist-calc/internal/models"
)

// Report is the rendered text of every calculator label.
// Outputs always has one entry per output slot; unused slots are empty.
type Report struct {
	Deterioration string
	Lifetime      string
	Replacement   string
	Cycle         string
	Efficiency    string
	DrillHead     string
	Materials     string
	Acid          string
	Oil           string
	Power         string
	Outputs       [models.MaxYieldsPerDepth]string
}

// Render formats m using the labels from tables
func Render(tables *models.Tables, m *calculator.Metrics) Report {
	drillHead := tables.DrillHead(m.Selection.DrillHead)
	acid := tables.Acid(m.Selection.Acid)
	oil := tables.Oil(m.Selection.Oil)

	r := Report{
		Deterioration: "⛓️‍💥 Deterioration Rate: " + format.Sig(m.DeteriorationRate) + "%/s",
		Lifetime:      "🕗 Lifetime: " + format.HumanizeDuration(m.LifeTime),
		Replacement:   "🔄 Replacement Time: " + format.HumanizeDuration(m.DowntimeSeconds()),
		Cycle:         "⏳ Cycle Time: " + format.HumanizeDuration(m.CycleTime),
		Efficiency:    "🔧 Efficiency: " + Percent(m.Efficiency),
		DrillHead:     drillHead.InfoText + ": " + units(m.DrillHead, "u/s"),
		Materials:     drillHead.MaterialInfoText + ": " + units(m.Materials, "u/s"),
		Acid:          acid.InfoText + ": " + fluid(m.Acid),
		Oil:           oil.InfoText + ": " + fluid(m.Oil),
		Power:         "⚡ Power: " + units(m.Power, "MMF/s"),
	}
	for i, y := range m.Yields {
		if i >= len(r.Outputs) {
			break
		}
		r.Outputs[i] = y.Name + ": " + units(y.Rate, "u/s")
	}
	return r
}

// Lines returns the labels in page order, skipping empty output slots
func (r Report) Lines() []string {
	lines := []string{
		r.Deterioration, r.Lifetime, r.Replacement, r.Cycle, r.Efficiency,
		r.DrillHead, r.Materials, r.Acid, r.Oil, r.Power,
	}
	for _, o := range r.Outputs {
		if o != "" {
			lines = append(lines, o)
		}
	}
	return lines
}

// Percent renders a 0..1 fraction as a truncated percentage
func Percent(fraction float64) string {
	return format.Sig(fraction*100) + "%"
}

// EfficiencyColor fades from red at 0 to green at 1, as #rrggbb
func EfficiencyColor(efficiency float64) string {
	r, g, b := EfficiencyRGB(efficiency)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// EfficiencyRGB is EfficiencyColor as components
func EfficiencyRGB(efficiency float64) (r, g, b int) {
	e := math.Max(0, math.Min(1, efficiency))
	return int((1 - e) * 255), int(e * 255), 0
}

func units(r calculator.Rate, unit string) string {
	return fmt.Sprintf("%s%s (average), %s%s (active)", format.Sig(r.Average), unit, format.Sig(r.Active), unit)
}

// fluid consumption shows the active rate as configured, untruncated
func fluid(r calculator.Rate) string {
	return fmt.Sprintf("%sL/s (average), %sL/s (active)", format.Sig(r.Average), format.Number(r.Active))
}
