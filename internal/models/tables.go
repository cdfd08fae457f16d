package models

import (
	"fmt"
	"slices"
)

// Tables is the read-only set of lookup tables used by the calculator.
// Slices keep declaration order, which is the order options are offered in.
type Tables struct {
	resources  []Resource
	drillHeads []DrillHead
	acids      []Acid
	oils       []Oil
	depths     []Depth

	resourceIdx  map[ResourceID]int
	drillHeadIdx map[DrillHeadID]int
	acidIdx      map[AcidID]int
	oilIdx       map[OilID]int
	depthIdx     map[DepthID]int
}

// NewTables indexes the given entries. Duplicate ids are rejected.
func NewTables(resources []Resource, drillHeads []DrillHead, acids []Acid, oils []Oil, depths []Depth) (*Tables, error) {
	t := &Tables{
		resources:    slices.Clone(resources),
		drillHeads:   slices.Clone(drillHeads),
		acids:        slices.Clone(acids),
		oils:         slices.Clone(oils),
		depths:       make([]Depth, len(depths)),
		resourceIdx:  make(map[ResourceID]int, len(resources)),
		drillHeadIdx: make(map[DrillHeadID]int, len(drillHeads)),
		acidIdx:      make(map[AcidID]int, len(acids)),
		oilIdx:       make(map[OilID]int, len(oils)),
		depthIdx:     make(map[DepthID]int, len(depths)),
	}
	for i, d := range depths {
		t.depths[i] = Depth{ID: d.ID, Yields: slices.Clone(d.Yields)}
	}

	for i, r := range t.resources {
		if _, dup := t.resourceIdx[r.ID]; dup {
			return nil, fmt.Errorf("duplicate resource %q", r.ID)
		}
		t.resourceIdx[r.ID] = i
	}
	for i, h := range t.drillHeads {
		if _, dup := t.drillHeadIdx[h.ID]; dup {
			return nil, fmt.Errorf("duplicate drill head %q", h.ID)
		}
		t.drillHeadIdx[h.ID] = i
	}
	for i, a := range t.acids {
		if _, dup := t.acidIdx[a.ID]; dup {
			return nil, fmt.Errorf("duplicate acid %q", a.ID)
		}
		t.acidIdx[a.ID] = i
	}
	for i, o := range t.oils {
		if _, dup := t.oilIdx[o.ID]; dup {
			return nil, fmt.Errorf("duplicate oil %q", o.ID)
		}
		t.oilIdx[o.ID] = i
	}
	for i, d := range t.depths {
		if _, dup := t.depthIdx[d.ID]; dup {
			return nil, fmt.Errorf("duplicate depth %d", d.ID)
		}
		t.depthIdx[d.ID] = i
	}
	return t, nil
}

func (t *Tables) Resources() []Resource   { return slices.Clone(t.resources) }
func (t *Tables) DrillHeads() []DrillHead { return slices.Clone(t.drillHeads) }
func (t *Tables) Acids() []Acid           { return slices.Clone(t.acids) }
func (t *Tables) Oils() []Oil             { return slices.Clone(t.oils) }
func (t *Tables) Depths() []Depth         { return slices.Clone(t.depths) }

// DepthIDs returns the depth ids in table order
func (t *Tables) DepthIDs() []DepthID {
	ids := make([]DepthID, len(t.depths))
	for i, d := range t.depths {
		ids[i] = d.ID
	}
	return ids
}

func (t *Tables) LookupDrillHead(id DrillHeadID) (DrillHead, bool) {
	i, ok := t.drillHeadIdx[id]
	if !ok {
		return DrillHead{}, false
	}
	return t.drillHeads[i], true
}

func (t *Tables) LookupAcid(id AcidID) (Acid, bool) {
	i, ok := t.acidIdx[id]
	if !ok {
		return Acid{}, false
	}
	return t.acids[i], true
}

func (t *Tables) LookupOil(id OilID) (Oil, bool) {
	i, ok := t.oilIdx[id]
	if !ok {
		return Oil{}, false
	}
	return t.oils[i], true
}

func (t *Tables) LookupDepth(id DepthID) (Depth, bool) {
	i, ok := t.depthIdx[id]
	if !ok {
		return Depth{}, false
	}
	return t.depths[i], true
}

func (t *Tables) LookupResource(id ResourceID) (Resource, bool) {
	i, ok := t.resourceIdx[id]
	if !ok {
		return Resource{}, false
	}
	return t.resources[i], true
}

// The accessors below are for ids that come from the tables themselves.
// A miss is a programming error and panics.

func (t *Tables) DrillHead(id DrillHeadID) DrillHead {
	h, ok := t.LookupDrillHead(id)
	if !ok {
		panic(fmt.Sprintf("unknown drill head %q", id))
	}
	return h
}

func (t *Tables) Acid(id AcidID) Acid {
	a, ok := t.LookupAcid(id)
	if !ok {
		panic(fmt.Sprintf("unknown acid %q", id))
	}
	return a
}

func (t *Tables) Oil(id OilID) Oil {
	o, ok := t.LookupOil(id)
	if !ok {
		panic(fmt.Sprintf("unknown oil %q", id))
	}
	return o
}

func (t *Tables) Depth(id DepthID) Depth {
	d, ok := t.LookupDepth(id)
	if !ok {
		panic(fmt.Sprintf("unknown depth %d", id))
	}
	return d
}

func (t *Tables) ResourceName(id ResourceID) string {
	r, ok := t.LookupResource(id)
	if !ok {
		panic(fmt.Sprintf("unknown resource %q", id))
	}
	return r.Name
}
