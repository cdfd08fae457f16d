package display

import (
	"strings"
	"testing"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/loader"
	"github.com/napolitain/industrialist-calc/internal/models"
)

func TestRenderDefaultSelection(t *testing.T) {
	tables := loader.Default()
	m := calculator.New(tables).Compute(calculator.DefaultSelection())
	r := Render(tables, m)

	expected := map[string]struct{ got, want string }{
		"Deterioration": {r.Deterioration, "⛓️‍💥 Deterioration Rate: 0.5%/s"},
		"Lifetime":      {r.Lifetime, "🕗 Lifetime: 3.33m"},
		"Replacement":   {r.Replacement, "🔄 Replacement Time: 16s"},
		"Cycle":         {r.Cycle, "⏳ Cycle Time: 3.6m"},
		"Efficiency":    {r.Efficiency, "🔧 Efficiency: 92.6%"},
		"DrillHead":     {r.DrillHead, "Copper Drill Head: 0.00463u/s (average), 0.005u/s (active)"},
		"Materials":     {r.Materials, "Copper Ingots: 0.0185u/s (average), 0.02u/s (active)"},
		"Acid":          {r.Acid, "No Acid: 0L/s (average), 0L/s (active)"},
		"Oil":           {r.Oil, "No Oil: 0L/s (average), 0L/s (active)"},
		"Power":         {r.Power, "⚡ Power: 2.88MMF/s (average), 3.1MMF/s (active)"},
		"Output1":       {r.Outputs[0], "Stone: 1.85u/s (average), 2u/s (active)"},
		"Output2":       {r.Outputs[1], "Coal: 0.463u/s (average), 0.5u/s (active)"},
		"Output3":       {r.Outputs[2], "Copper Ore: 0.37u/s (average), 0.4u/s (active)"},
		"Output4":       {r.Outputs[3], ""},
	}

	for name, e := range expected {
		if e.got != e.want {
			t.Errorf("%s: expected %q, got %q", name, e.want, e.got)
		}
	}

	if got := len(r.Lines()); got != 13 {
		t.Errorf("Expected 13 lines (empty slot skipped), got %d", got)
	}
}

func TestRenderFluidActiveUntruncated(t *testing.T) {
	tables := loader.Default()
	sel := calculator.Selection{DrillHead: "iron", Acid: "sulfuric", Oil: models.MachineOil, Depth: 500}
	r := Render(tables, calculator.New(tables).Compute(sel))

	if want := "0.5L/s (active)"; !strings.HasSuffix(r.Acid, want) {
		t.Errorf("Acid label %q should end with %q", r.Acid, want)
	}
	if want := "0.5L/s (active)"; !strings.HasSuffix(r.Oil, want) {
		t.Errorf("Oil label %q should end with %q", r.Oil, want)
	}
}

func TestEfficiencyColor(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "#ff0000"},
		{1, "#00ff00"},
		{0.5, "#7f7f00"},
		{-1, "#ff0000"},
		{2, "#00ff00"},
	}
	for _, tt := range tests {
		if got := EfficiencyColor(tt.in); got != tt.want {
			t.Errorf("EfficiencyColor(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
