package models

import (
	"strings"
	"testing"
)

func newTestTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := NewTables(
		[]Resource{{ID: "stone", Name: "Stone"}, {ID: "ironOre", Name: "Iron Ore"}},
		[]DrillHead{
			{ID: "copper", DropdownText: "Copper", MaterialAmount: 4, Multi: TableCurve(map[DepthID]float64{300: 1})},
			{ID: "iron", DropdownText: "Iron", MaterialAmount: 4, Multi: TableCurve(map[DepthID]float64{300: 0.6})},
		},
		[]Acid{{ID: NoAcid, Multi: ConstantCurve(1)}},
		[]Oil{{ID: NoOil}, {ID: MachineOil, Rate: 0.5}},
		[]Depth{
			{ID: 100, Yields: []DepthYield{{Resource: "stone", Amount: 2}}},
			{ID: 300, Yields: []DepthYield{{Resource: "stone", Amount: 1.5}, {Resource: "ironOre", Amount: 0.4}}},
		},
	)
	if err != nil {
		t.Fatalf("NewTables: %v", err)
	}
	return tables
}

func TestNewTablesOrderAndLookup(t *testing.T) {
	tables := newTestTables(t)

	heads := tables.DrillHeads()
	if len(heads) != 2 || heads[0].ID != "copper" || heads[1].ID != "iron" {
		t.Errorf("drill heads should keep declaration order, got %+v", heads)
	}
	if ids := tables.DepthIDs(); len(ids) != 2 || ids[0] != 100 || ids[1] != 300 {
		t.Errorf("expected depths [100 300], got %v", ids)
	}

	if h, ok := tables.LookupDrillHead("iron"); !ok || h.DropdownText != "Iron" {
		t.Errorf("LookupDrillHead(iron) = %+v, %v", h, ok)
	}
	if _, ok := tables.LookupDrillHead("steel"); ok {
		t.Error("LookupDrillHead(steel) should miss")
	}
	if _, ok := tables.LookupAcid("nitric"); ok {
		t.Error("LookupAcid(nitric) should miss")
	}
	if o, ok := tables.LookupOil(MachineOil); !ok || o.Rate != 0.5 {
		t.Errorf("LookupOil(machineOil) = %+v, %v", o, ok)
	}
	if d, ok := tables.LookupDepth(300); !ok || len(d.Yields) != 2 {
		t.Errorf("LookupDepth(300) = %+v, %v", d, ok)
	}
	if got := tables.ResourceName("ironOre"); got != "Iron Ore" {
		t.Errorf("ResourceName(ironOre) = %q", got)
	}
}

func TestTablesAccessorsReturnCopies(t *testing.T) {
	tables := newTestTables(t)

	heads := tables.DrillHeads()
	heads[0].DropdownText = "changed"
	if tables.DrillHead("copper").DropdownText != "Copper" {
		t.Error("DrillHeads() should return a copy")
	}

	depths := tables.Depths()
	depths[0].ID = 999
	if _, ok := tables.LookupDepth(100); !ok {
		t.Error("Depths() should return a copy")
	}
}

func TestNewTablesCopiesYields(t *testing.T) {
	yields := []DepthYield{{Resource: "stone", Amount: 2}}
	tables, err := NewTables([]Resource{{ID: "stone", Name: "Stone"}}, nil, nil, nil, []Depth{{ID: 100, Yields: yields}})
	if err != nil {
		t.Fatal(err)
	}
	yields[0].Amount = 99

	if got := tables.Depth(100).Yields[0].Amount; got != 2 {
		t.Errorf("tables should not share the caller's yields, got %v", got)
	}
}

func TestNewTablesRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*Tables, error)
		wantErr string
	}{
		{"resource", func() (*Tables, error) {
			return NewTables([]Resource{{ID: "stone"}, {ID: "stone"}}, nil, nil, nil, nil)
		}, `duplicate resource "stone"`},
		{"drill head", func() (*Tables, error) {
			return NewTables(nil, []DrillHead{{ID: "copper"}, {ID: "copper"}}, nil, nil, nil)
		}, `duplicate drill head "copper"`},
		{"acid", func() (*Tables, error) {
			return NewTables(nil, nil, []Acid{{ID: NoAcid}, {ID: NoAcid}}, nil, nil)
		}, `duplicate acid "none"`},
		{"oil", func() (*Tables, error) {
			return NewTables(nil, nil, nil, []Oil{{ID: MachineOil}, {ID: MachineOil}}, nil)
		}, `duplicate oil "machineOil"`},
		{"depth", func() (*Tables, error) {
			return NewTables(nil, nil, nil, nil, []Depth{{ID: 300}, {ID: 300}})
		}, "duplicate depth 300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTablesAccessorPanics(t *testing.T) {
	tables := newTestTables(t)

	tests := []struct {
		name string
		fn   func()
	}{
		{"drill head", func() { tables.DrillHead("steel") }},
		{"acid", func() { tables.Acid("nitric") }},
		{"oil", func() { tables.Oil("lubricant") }},
		{"depth", func() { tables.Depth(500) }},
		{"resource", func() { tables.ResourceName("diamond") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
