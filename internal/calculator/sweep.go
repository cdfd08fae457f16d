package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/napolitain/industrialist-calc/internal/models"
)

// SortKind is what a sweep ranks selections by
type SortKind string

const (
	SortEfficiency    SortKind = "efficiency"
	SortLifetime      SortKind = "lifetime"
	SortDeterioration SortKind = "deterioration"
	SortYield         SortKind = "yield"
)

// SortKey ranks sweep results. Resource is only used with SortYield.
type SortKey struct {
	Kind     SortKind
	Resource models.ResourceID
}

func (k SortKey) String() string {
	if k.Kind == SortYield {
		return fmt.Sprintf("%s:%s", k.Kind, k.Resource)
	}
	return string(k.Kind)
}

// ParseSortKey accepts efficiency, lifetime, deterioration or yield:<resource>
func ParseSortKey(tables *models.Tables, s string) (SortKey, error) {
	kind, resource, hasResource := strings.Cut(strings.TrimSpace(s), ":")
	switch SortKind(strings.ToLower(kind)) {
	case SortEfficiency:
		return SortKey{Kind: SortEfficiency}, nil
	case SortLifetime:
		return SortKey{Kind: SortLifetime}, nil
	case SortDeterioration:
		return SortKey{Kind: SortDeterioration}, nil
	case SortYield:
		if !hasResource || resource == "" {
			return SortKey{}, fmt.Errorf("sort key %q needs a resource, e.g. yield:ironOre", s)
		}
		id, err := tables.ParseResourceID(resource)
		if err != nil {
			return SortKey{}, err
		}
		return SortKey{Kind: SortYield, Resource: id}, nil
	}
	return SortKey{}, fmt.Errorf("unknown sort key %q (want efficiency, lifetime, deterioration or yield:<resource>)", s)
}

// Filter pins parts of the selection during a sweep. Zero values match everything.
type Filter struct {
	DrillHead models.DrillHeadID
	Acid      models.AcidID
	Oil       models.OilID
	Depth     models.DepthID
}

// Result is one ranked selection
type Result struct {
	Rank    int      `json:"rank" yaml:"rank"`
	Score   float64  `json:"score" yaml:"score"`
	Metrics *Metrics `json:"metrics" yaml:"metrics"`
}

// Selections lists every selection allowed by f, in table order
func (c *Calculator) Selections(f Filter) []Selection {
	var out []Selection
	for _, h := range c.tables.DrillHeads() {
		if f.DrillHead != "" && h.ID != f.DrillHead {
			continue
		}
		for _, a := range c.tables.Acids() {
			if f.Acid != "" && a.ID != f.Acid {
				continue
			}
			for _, o := range c.tables.Oils() {
				if f.Oil != "" && o.ID != f.Oil {
					continue
				}
				for _, d := range c.tables.DepthIDs() {
					if f.Depth != 0 && d != f.Depth {
						continue
					}
					out = append(out, Selection{DrillHead: h.ID, Acid: a.ID, Oil: o.ID, Depth: d})
				}
			}
		}
	}
	return out
}

// Sweep computes every selection allowed by f and ranks them best first.
// Ties keep table order.
func (c *Calculator) Sweep(f Filter, key SortKey) []Result {
	selections := c.Selections(f)
	results := make([]Result, len(selections))
	for i, sel := range selections {
		m := c.Compute(sel)
		results[i] = Result{Score: score(m, key), Metrics: m}
	}

	lowerIsBetter := key.Kind == SortDeterioration
	sort.SliceStable(results, func(i, j int) bool {
		if lowerIsBetter {
			return results[i].Score < results[j].Score
		}
		return results[i].Score > results[j].Score
	})

	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

func score(m *Metrics, key SortKey) float64 {
	switch key.Kind {
	case SortLifetime:
		return m.LifeTime
	case SortDeterioration:
		return m.DeteriorationRate
	case SortYield:
		for _, y := range m.Yields {
			if y.Resource == key.Resource {
				return y.Rate.Average
			}
		}
		return 0
	default:
		return m.Efficiency
	}
}
