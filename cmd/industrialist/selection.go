package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/models"
)

// selectionFlags are the four dropdowns as command line flags
type selectionFlags struct {
	drillHead string
	acid      string
	oil       string
	depth     string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.drillHead, "drill-head", "", "drill head id (copper, iron, steel, titanium)")
	cmd.Flags().StringVar(&f.acid, "acid", "", "acid id (none, sulfuric, nitric)")
	cmd.Flags().StringVar(&f.oil, "oil", "", "oil id (none, machineOil, lubricant)")
	cmd.Flags().StringVar(&f.depth, "depth", "", "depth in meters (100, 300, 500, 750, 1000)")
}

// apply overrides base with every flag that was set
func (f *selectionFlags) apply(tables *models.Tables, base calculator.Selection) (calculator.Selection, error) {
	pins, err := f.filter(tables)
	if err != nil {
		return calculator.Selection{}, err
	}

	sel := base
	if pins.DrillHead != "" {
		sel.DrillHead = pins.DrillHead
	}
	if pins.Acid != "" {
		sel.Acid = pins.Acid
	}
	if pins.Oil != "" {
		sel.Oil = pins.Oil
	}
	if pins.Depth != 0 {
		sel.Depth = pins.Depth
	}
	return sel, nil
}

// filter parses the set flags; unset flags stay zero and match anything
func (f *selectionFlags) filter(tables *models.Tables) (calculator.Filter, error) {
	var (
		pins calculator.Filter
		errs []error
		err  error
	)

	if f.drillHead != "" {
		pins.DrillHead, err = tables.ParseDrillHeadID(f.drillHead)
		errs = append(errs, err)
	}
	if f.acid != "" {
		pins.Acid, err = tables.ParseAcidID(f.acid)
		errs = append(errs, err)
	}
	if f.oil != "" {
		pins.Oil, err = tables.ParseOilID(f.oil)
		errs = append(errs, err)
	}
	if f.depth != "" {
		pins.Depth, err = tables.ParseDepthID(f.depth)
		errs = append(errs, err)
	}

	return pins, errors.Join(errs...)
}
