package calculator_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/cucumber/godog"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/display"
	"github.com/napolitain/industrialist-calc/internal/loader"
	"github.com/napolitain/industrialist-calc/internal/models"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeDrillScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type drillContext struct {
	calc    *calculator.Calculator
	sel     calculator.Selection
	metrics *calculator.Metrics
}

func (dc *drillContext) reset() {
	dc.calc = calculator.New(loader.Default())
	dc.sel = calculator.Selection{}
	dc.metrics = nil
}

func InitializeDrillScenario(sc *godog.ScenarioContext) {
	dc := &drillContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		dc.reset()
		return ctx, nil
	})

	sc.Step(`^the default drill selection$`, dc.theDefaultDrillSelection)
	sc.Step(`^the selection "([^"]*)", "([^"]*)", "([^"]*)" at (\d+)m$`, dc.theSelectionAt)
	sc.Step(`^I compute the drill metrics$`, dc.iComputeTheDrillMetrics)
	sc.Step(`^the deterioration rate is ([\d.]+) %/s$`, dc.theDeteriorationRateIs)
	sc.Step(`^the lifetime is (\d+) seconds$`, dc.theLifetimeIs)
	sc.Step(`^the travel time is (\d+) seconds$`, dc.theTravelTimeIs)
	sc.Step(`^the cycle time is (\d+) seconds$`, dc.theCycleTimeIs)
	sc.Step(`^the efficiency is ([\d.]+)$`, dc.theEfficiencyIs)
	sc.Step(`^the (average|active) yield of "([^"]*)" is ([\d.]+) u/s$`, dc.theYieldIs)
	sc.Step(`^the "([^"]*)" label reads "([^"]*)"$`, dc.theLabelReads)
	sc.Step(`^the lifetime equals the lifetime at (\d+)m$`, dc.theLifetimeEqualsTheLifetimeAt)
	sc.Step(`^the average oil consumption excludes only the replacement pause$`, dc.theAverageOilConsumptionExcludesOnlyTheReplacementPause)
}

func (dc *drillContext) theDefaultDrillSelection() error {
	dc.sel = calculator.DefaultSelection()
	return nil
}

func (dc *drillContext) theSelectionAt(drillHead, acid, oil string, depth int) error {
	dc.sel = calculator.Selection{
		DrillHead: models.DrillHeadID(drillHead),
		Acid:      models.AcidID(acid),
		Oil:       models.OilID(oil),
		Depth:     models.DepthID(depth),
	}
	return nil
}

func (dc *drillContext) iComputeTheDrillMetrics() error {
	dc.metrics = dc.calc.Compute(dc.sel)
	return nil
}

func expectClose(what string, got, want, tolerance float64) error {
	if math.Abs(got-want) > tolerance {
		return fmt.Errorf("%s: expected %v, got %v", what, want, got)
	}
	return nil
}

func (dc *drillContext) theDeteriorationRateIs(want float64) error {
	return expectClose("deterioration rate", dc.metrics.DeteriorationRate, want, 1e-9)
}

func (dc *drillContext) theLifetimeIs(want int) error {
	return expectClose("lifetime", dc.metrics.LifeTime, float64(want), 0)
}

func (dc *drillContext) theTravelTimeIs(want int) error {
	return expectClose("travel time", dc.metrics.TravelTime, float64(want), 1e-9)
}

func (dc *drillContext) theCycleTimeIs(want int) error {
	return expectClose("cycle time", dc.metrics.CycleTime, float64(want), 1e-9)
}

func (dc *drillContext) theEfficiencyIs(want float64) error {
	return expectClose("efficiency", dc.metrics.Efficiency, want, 1e-6)
}

func (dc *drillContext) theYieldIs(kind, resource string, want float64) error {
	for _, y := range dc.metrics.Yields {
		if string(y.Resource) != resource {
			continue
		}
		got := y.Rate.Active
		if kind == "average" {
			got = y.Rate.Average
		}
		return expectClose(kind+" "+resource+" yield", got, want, 1e-9)
	}
	return fmt.Errorf("no %q yield at %v", resource, dc.sel.Depth)
}

func (dc *drillContext) theLabelReads(label, want string) error {
	r := display.Render(dc.calc.Tables(), dc.metrics)
	labels := map[string]string{
		"Deterioration": r.Deterioration,
		"Lifetime":      r.Lifetime,
		"Replacement":   r.Replacement,
		"Cycle":         r.Cycle,
		"Efficiency":    r.Efficiency,
		"Power":         r.Power,
	}
	got, ok := labels[label]
	if !ok {
		return fmt.Errorf("unknown label %q", label)
	}
	if got != want {
		return fmt.Errorf("%s label: expected %q, got %q", label, want, got)
	}
	return nil
}

func (dc *drillContext) theLifetimeEqualsTheLifetimeAt(depth int) error {
	other := dc.calc.Compute(dc.sel.WithDepth(models.DepthID(depth)))
	if other.LifeTime != dc.metrics.LifeTime {
		return fmt.Errorf("lifetime at %v is %v, at %dm it is %v", dc.sel.Depth, dc.metrics.LifeTime, depth, other.LifeTime)
	}
	return nil
}

func (dc *drillContext) theAverageOilConsumptionExcludesOnlyTheReplacementPause() error {
	m := dc.metrics
	want := m.Oil.Active * (m.CycleTime - calculator.ReplacementTime) / m.CycleTime
	if err := expectClose("average oil", m.Oil.Average, want, 1e-12); err != nil {
		return err
	}
	if m.Oil.Average <= m.Oil.Active*m.Efficiency {
		return fmt.Errorf("average oil %v should exceed active rate × efficiency %v", m.Oil.Average, m.Oil.Active*m.Efficiency)
	}
	return nil
}
