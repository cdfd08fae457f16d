package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// UnknownIDError is returned when user input names no table entry
type UnknownIDError struct {
	Kind        string
	Value       string
	Suggestions []string
}

func (e *UnknownIDError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
	if len(e.Suggestions) == 0 {
		return msg
	}
	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = strconv.Quote(s)
	}
	return msg + ", did you mean " + strings.Join(quoted, " or ") + "?"
}

// ParseDrillHeadID resolves user input to a drill head id
func (t *Tables) ParseDrillHeadID(s string) (DrillHeadID, error) {
	ids := make([]string, len(t.drillHeads))
	for i, h := range t.drillHeads {
		ids[i] = string(h.ID)
	}
	id, err := matchID("drill head", s, ids)
	return DrillHeadID(id), err
}

// ParseAcidID resolves user input to an acid id
func (t *Tables) ParseAcidID(s string) (AcidID, error) {
	ids := make([]string, len(t.acids))
	for i, a := range t.acids {
		ids[i] = string(a.ID)
	}
	id, err := matchID("acid", s, ids)
	return AcidID(id), err
}

// ParseOilID resolves user input to an oil id
func (t *Tables) ParseOilID(s string) (OilID, error) {
	ids := make([]string, len(t.oils))
	for i, o := range t.oils {
		ids[i] = string(o.ID)
	}
	id, err := matchID("oil", s, ids)
	return OilID(id), err
}

// ParseResourceID resolves user input to a resource id
func (t *Tables) ParseResourceID(s string) (ResourceID, error) {
	ids := make([]string, len(t.resources))
	for i, r := range t.resources {
		ids[i] = string(r.ID)
	}
	id, err := matchID("resource", s, ids)
	return ResourceID(id), err
}

// ParseDepthID accepts "300" or "300m"
func (t *Tables) ParseDepthID(s string) (DepthID, error) {
	ids := make([]string, len(t.depths))
	for i, d := range t.depths {
		ids[i] = strconv.Itoa(int(d.ID))
	}
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "m")
	id, err := matchID("depth", trimmed, ids)
	if err != nil {
		if e, ok := err.(*UnknownIDError); ok {
			e.Value = s
		}
		return 0, err
	}
	n, _ := strconv.Atoi(id)
	return DepthID(n), nil
}

func matchID(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}
	for _, id := range ids {
		if strings.EqualFold(id, input) {
			return id, nil
		}
	}
	return "", &UnknownIDError{Kind: kind, Value: input, Suggestions: suggest(input, ids)}
}

type suggestion struct {
	id    string
	dist  int
	order int
}

// suggest returns the ids within edit distance of input, closest first
func suggest(input string, ids []string) []string {
	if input == "" {
		return nil
	}
	lower := strings.ToLower(input)
	var cands []suggestion
	for i, id := range ids {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(id))
		if dist > suggestionLimit(len(id)) {
			continue
		}
		cands = append(cands, suggestion{id: id, dist: dist, order: i})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].order < cands[j].order
		}
		return cands[i].dist < cands[j].dist
	})
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.id)
	}
	return out
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
