package models

import "fmt"

// ResourceID identifies a mined resource (ore, stone, gems...)
type ResourceID string

// DrillHeadID identifies a drill head variant
type DrillHeadID string

// AcidID identifies an acid variant
type AcidID string

// OilID identifies an oil variant
type OilID string

// DepthID is a drilling depth in meters below the surface
type DepthID int

const (
	NoAcid     AcidID = "none"
	NoOil      OilID  = "none"
	MachineOil OilID  = "machineOil"
)

const (
	// ShallowDepth has no multiplier points of its own and borrows ShallowMultiplierDepth.
	ShallowDepth           DepthID = 100
	ShallowMultiplierDepth DepthID = 300
)

// MultiplierDepth returns the depth at which drill head and acid curves are evaluated.
// Travel time still uses the real depth.
func (d DepthID) MultiplierDepth() DepthID {
	if d == ShallowDepth {
		return ShallowMultiplierDepth
	}
	return d
}

func (d DepthID) String() string {
	return fmt.Sprintf("%dm", int(d))
}

// CurveKind tags the representation of a Curve
type CurveKind string

const (
	CurveConstant CurveKind = "constant"
	CurveTable    CurveKind = "table"
)

// Curve is a depth-dependent multiplier.
// A constant curve returns Value at every depth, a table curve returns Points[depth].
type Curve struct {
	Kind   CurveKind
	Value  float64
	Points map[DepthID]float64
}

// ConstantCurve returns a curve with the same multiplier at every depth
func ConstantCurve(v float64) Curve {
	return Curve{Kind: CurveConstant, Value: v}
}

// TableCurve returns a curve defined point by point
func TableCurve(points map[DepthID]float64) Curve {
	cp := make(map[DepthID]float64, len(points))
	for d, v := range points {
		cp[d] = v
	}
	return Curve{Kind: CurveTable, Points: cp}
}

// Defined reports whether the curve has a value at depth
func (c Curve) Defined(depth DepthID) bool {
	switch c.Kind {
	case CurveConstant:
		return true
	case CurveTable:
		_, ok := c.Points[depth]
		return ok
	}
	return false
}

// At evaluates the curve. Asking a table curve for a depth it does not define panics.
func (c Curve) At(depth DepthID) float64 {
	switch c.Kind {
	case CurveConstant:
		return c.Value
	case CurveTable:
		v, ok := c.Points[depth]
		if !ok {
			panic(fmt.Sprintf("multiplier curve has no point at depth %d", depth))
		}
		return v
	}
	panic(fmt.Sprintf("unknown curve kind %q", c.Kind))
}

// Resource is a named output of the drill
type Resource struct {
	ID   ResourceID
	Name string
}

// DrillHead is a consumable head; it wears out and is replaced with MaterialAmount ingots
type DrillHead struct {
	ID               DrillHeadID
	ClassName        string
	DropdownText     string
	InfoText         string
	MaterialInfoText string
	MaterialAmount   float64
	Multi            Curve
}

// Acid changes the wear of the drill head and is consumed while drilling
type Acid struct {
	ID           AcidID
	ClassName    string
	DropdownText string
	InfoText     string
	Rate         float64 // liters per second
	Multi        Curve
}

// Oil is consumed while the drill runs and travels
type Oil struct {
	ID           OilID
	ClassName    string
	DropdownText string
	InfoText     string
	Rate         float64 // liters per second
}

// IsMachineOil reports whether the oil gives the travel and yield bonus
func (o Oil) IsMachineOil() bool {
	return o.ID == MachineOil
}

// DepthYield is the base output of one resource per active second
type DepthYield struct {
	Resource ResourceID
	Amount   float64
}

// MaxYieldsPerDepth is the number of output slots shown by the calculator
const MaxYieldsPerDepth = 4

// Depth lists what the drill brings up at a given depth
type Depth struct {
	ID     DepthID
	Yields []DepthYield
}
