package species

import "github.com/gyaneshwarpardhi/evochain/internal/condition"

// Summary is the display snapshot of a single species.
type Summary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types"`
}

// Detail is the canonical input for one detail view, as handed over by the
// data-fetch layer. EvolutionEdges takes precedence over LegacyEvolutions.
type Detail struct {
	ID               int           `json:"id" validate:"gt=0"`
	Name             string        `json:"name"`
	ImageURL         string        `json:"imageUrl"`
	Types            []string      `json:"types"`
	EvolutionEdges   []EdgeRecord  `json:"evolutionEdges,omitempty" validate:"omitempty,max=500,dive"`
	LegacyEvolutions []LegacyEntry `json:"legacyEvolutions,omitempty" validate:"omitempty,max=100,dive"`
}

// Summary returns the display snapshot of the viewed species itself.
func (d *Detail) Summary() Summary {
	types := d.Types
	if types == nil {
		types = []string{}
	}
	return Summary{ID: d.ID, Name: d.Name, ImageURL: d.ImageURL, Types: types}
}

// EdgeRecord is one raw "from evolves into to" record. Condition fields are
// inlined; an optional Details object overrides them (see Condition).
type EdgeRecord struct {
	From        int      `json:"from"`
	To          int      `json:"to"`
	ToSummary   *Summary `json:"toSummary,omitempty"`
	FromSummary *Summary `json:"fromSummary,omitempty"`
	Fields
	Details *Fields `json:"details,omitempty"`
}

// Condition converts the loosely populated fields into the tagged union.
func (r *EdgeRecord) Condition() condition.Condition {
	return r.Fields.merge(r.Details)
}

// LegacyEntry is one element of the older flat "next species" list.
type LegacyEntry struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types,omitempty"`
	Fields
	Details *Fields `json:"details,omitempty"`
}

// Summary returns the display snapshot carried by the entry.
func (e *LegacyEntry) Summary() Summary {
	types := e.Types
	if types == nil {
		types = []string{}
	}
	return Summary{ID: e.ID, Name: e.Name, ImageURL: e.ImageURL, Types: types}
}

// Condition converts the entry's fields into the tagged union.
func (e *LegacyEntry) Condition() condition.Condition {
	return e.Fields.merge(e.Details)
}
