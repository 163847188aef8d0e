package condition

import (
	"maps"
	"strings"
)

// DefaultSeparator joins the clauses of a level-up description.
const DefaultSeparator = " • "

// Lexicon holds the display lookup tables used by the Describer. Keys are
// lower-case data-source identifiers such as "fire-stone".
type Lexicon struct {
	Separator string            `json:"separator"`
	Items     map[string]string `json:"items"`
	Locations map[string]string `json:"locations"`
	Types     map[string]string `json:"types"`
}

// DefaultLexicon returns a fresh copy of the built-in tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Separator: DefaultSeparator,
		Items: map[string]string{
			"fire-stone":    "Fire Stone",
			"water-stone":   "Water Stone",
			"thunder-stone": "Thunder Stone",
			"leaf-stone":    "Leaf Stone",
			"ice-stone":     "Ice Stone",
			"dusk-stone":    "Dusk Stone",
			"dawn-stone":    "Dawn Stone",
			"shiny-stone":   "Shiny Stone",
			"moon-stone":    "Moon Stone",
			"sun-stone":     "Sun Stone",
			"metal-coat":    "Metal Coat",
			"king's-rock":   "King's Rock",
			"upgrade":       "Upgrade",
			"dubious-disc":  "Dubious Disc",
			"oval-stone":    "Oval Stone",
			"razor-claw":    "Razor Claw",
			"razor-fang":    "Razor Fang",
		},
		Locations: map[string]string{
			"eterna-forest":    "Eterna Forest",
			"sinnoh-route-217": "Route 217 (Sinnoh)",
		},
		Types: map[string]string{
			"normal":   "Normal",
			"fire":     "Fire",
			"water":    "Water",
			"electric": "Electric",
			"grass":    "Grass",
			"ice":      "Ice",
			"fighting": "Fighting",
			"poison":   "Poison",
			"ground":   "Ground",
			"flying":   "Flying",
			"psychic":  "Psychic",
			"bug":      "Bug",
			"rock":     "Rock",
			"ghost":    "Ghost",
			"dragon":   "Dragon",
			"dark":     "Dark",
			"steel":    "Steel",
			"fairy":    "Fairy",
		},
	}
}

// Merge returns a copy of l with the non-empty entries of override applied.
// Override keys are lower-cased.
func (l *Lexicon) Merge(override *Lexicon) *Lexicon {
	out := &Lexicon{
		Separator: l.Separator,
		Items:     maps.Clone(l.Items),
		Locations: maps.Clone(l.Locations),
		Types:     maps.Clone(l.Types),
	}
	if override == nil {
		return out
	}
	if override.Separator != "" {
		out.Separator = override.Separator
	}
	mergeTable(&out.Items, override.Items)
	mergeTable(&out.Locations, override.Locations)
	mergeTable(&out.Types, override.Types)
	return out
}

func mergeTable(dst *map[string]string, src map[string]string) {
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		if v == "" {
			continue
		}
		(*dst)[strings.ToLower(k)] = v
	}
}

// Item returns the display label of an item, or the identifier with dashes
// replaced by spaces when the table has no entry.
func (l *Lexicon) Item(id string) string {
	return lookup(l.Items, id)
}

// Location returns the display label of a location.
func (l *Lexicon) Location(id string) string {
	return lookup(l.Locations, id)
}

// Type returns the display label of an elemental type, or the raw
// identifier when unknown.
func (l *Lexicon) Type(id string) string {
	if v, ok := l.Types[strings.ToLower(id)]; ok {
		return v
	}
	return id
}

func lookup(table map[string]string, id string) string {
	if id == "" {
		return ""
	}
	if v, ok := table[strings.ToLower(id)]; ok {
		return v
	}
	return dashesToSpaces(id)
}

func dashesToSpaces(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
