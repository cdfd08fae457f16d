// Package calculator derives mineshaft drill throughput from a selection of
// drill head, acid, oil and depth.
package calculator

import (
	"math"

	"github.com/napolitain/industrialist-calc/internal/loader"
	"github.com/napolitain/industrialist-calc/internal/models"
)

const (
	// ReplacementTime is the pause, in seconds, to swap a worn drill head
	ReplacementTime = 12.0

	baseDeterioration = 0.5 // %/s before multipliers
	machineOilBonus   = 1.1

	travelSpeed           = 50.0 // m/s
	machineOilTravelSpeed = 100.0

	powerActive = 3.1 // MMF/s
)

// Selection is one choice from each dropdown
type Selection struct {
	DrillHead models.DrillHeadID `json:"drill_head" yaml:"drill_head"`
	Acid      models.AcidID      `json:"acid" yaml:"acid"`
	Oil       models.OilID       `json:"oil" yaml:"oil"`
	Depth     models.DepthID     `json:"depth" yaml:"depth"`
}

// DefaultSelection is what the calculator shows before the user picks anything
func DefaultSelection() Selection {
	return Selection{
		DrillHead: "copper",
		Acid:      models.NoAcid,
		Oil:       models.NoOil,
		Depth:     models.ShallowDepth,
	}
}

func (s Selection) WithDrillHead(id models.DrillHeadID) Selection { s.DrillHead = id; return s }
func (s Selection) WithAcid(id models.AcidID) Selection           { s.Acid = id; return s }
func (s Selection) WithOil(id models.OilID) Selection             { s.Oil = id; return s }
func (s Selection) WithDepth(id models.DepthID) Selection         { s.Depth = id; return s }

// Rate is a throughput while drilling (Active) and over a whole cycle (Average)
type Rate struct {
	Average float64 `json:"average" yaml:"average"`
	Active  float64 `json:"active" yaml:"active"`
}

// YieldRate is the output of one resource
type YieldRate struct {
	Resource models.ResourceID `json:"resource" yaml:"resource"`
	Name     string            `json:"name" yaml:"name"`
	Rate     Rate              `json:"rate" yaml:"rate"`
}

// Metrics holds every quantity the calculator page displays
type Metrics struct {
	Selection Selection `json:"selection" yaml:"selection"`

	DepthForMulti  models.DepthID `json:"depth_for_multi" yaml:"depth_for_multi"`
	DrillHeadMulti float64        `json:"drill_head_multi" yaml:"drill_head_multi"`
	AcidMulti      float64        `json:"acid_multi" yaml:"acid_multi"`
	MachineOil     bool           `json:"machine_oil" yaml:"machine_oil"`

	DeteriorationRate float64 `json:"deterioration_rate" yaml:"deterioration_rate"` // %/s
	ReplacementTime   float64 `json:"replacement_time" yaml:"replacement_time"`     // s
	TravelTime        float64 `json:"travel_time" yaml:"travel_time"`               // s
	LifeTime          float64 `json:"life_time" yaml:"life_time"`                   // s
	CycleTime         float64 `json:"cycle_time" yaml:"cycle_time"`                 // s
	Efficiency        float64 `json:"efficiency" yaml:"efficiency"`

	DrillHead Rate        `json:"drill_head" yaml:"drill_head"` // heads/s
	Materials Rate        `json:"materials" yaml:"materials"`   // ingots/s
	Acid      Rate        `json:"acid" yaml:"acid"`             // L/s
	Oil       Rate        `json:"oil" yaml:"oil"`               // L/s
	Power     Rate        `json:"power" yaml:"power"`           // MMF/s
	Yields    []YieldRate `json:"yields" yaml:"yields"`
}

// DowntimeSeconds is the time per cycle the drill is not producing
func (m *Metrics) DowntimeSeconds() float64 {
	return m.ReplacementTime + m.TravelTime
}

// Calculator computes metrics against a fixed set of lookup tables
type Calculator struct {
	tables *models.Tables
}

// New creates a calculator over tables
func New(tables *models.Tables) *Calculator {
	return &Calculator{tables: tables}
}

// Tables returns the lookup tables the calculator reads from
func (c *Calculator) Tables() *models.Tables {
	return c.tables
}

// Compute evaluates sel with the built-in tables
func Compute(sel Selection) *Metrics {
	return New(loader.Default()).Compute(sel)
}

// Compute evaluates one selection. Every id must come from the tables;
// an unknown id panics.
func (c *Calculator) Compute(sel Selection) *Metrics {
	drillHead := c.tables.DrillHead(sel.DrillHead)
	acid := c.tables.Acid(sel.Acid)
	oil := c.tables.Oil(sel.Oil)
	depth := c.tables.Depth(sel.Depth)

	depthForMulti := sel.Depth.MultiplierDepth()
	drillHeadMulti := drillHead.Multi.At(depthForMulti)
	acidMulti := acid.Multi.At(depthForMulti)
	machineOil := oil.IsMachineOil()

	bonus := 1.0
	speed := travelSpeed
	if machineOil {
		bonus = machineOilBonus
		speed = machineOilTravelSpeed
	}

	deteriorationRate := baseDeterioration * drillHeadMulti * acidMulti * bonus
	travelTime := (2 * float64(sel.Depth)) / speed
	lifeTime := math.Ceil(100 / deteriorationRate)
	cycleTime := ReplacementTime + travelTime + lifeTime
	efficiency := lifeTime / cycleTime

	m := &Metrics{
		Selection:         sel,
		DepthForMulti:     depthForMulti,
		DrillHeadMulti:    drillHeadMulti,
		AcidMulti:         acidMulti,
		MachineOil:        machineOil,
		DeteriorationRate: deteriorationRate,
		ReplacementTime:   ReplacementTime,
		TravelTime:        travelTime,
		LifeTime:          lifeTime,
		CycleTime:         cycleTime,
		Efficiency:        efficiency,
		DrillHead: Rate{
			Average: 1 / cycleTime,
			Active:  1 / lifeTime,
		},
		Materials: Rate{
			Average: drillHead.MaterialAmount / cycleTime,
			Active:  drillHead.MaterialAmount / lifeTime,
		},
		Acid: Rate{
			Average: acid.Rate * efficiency,
			Active:  acid.Rate,
		},
		// Oil keeps flowing while the drill travels, only the replacement pause is dry.
		Oil: Rate{
			Average: oil.Rate * (1 - ReplacementTime/cycleTime),
			Active:  oil.Rate,
		},
		Power: Rate{
			Average: 3*efficiency + 0.1,
			Active:  powerActive,
		},
		Yields: make([]YieldRate, 0, len(depth.Yields)),
	}

	for _, y := range depth.Yields {
		amount := y.Amount * bonus
		m.Yields = append(m.Yields, YieldRate{
			Resource: y.Resource,
			Name:     c.tables.ResourceName(y.Resource),
			Rate: Rate{
				Average: amount * efficiency,
				Active:  amount,
			},
		})
	}

	return m
}
