package condition

import (
	"fmt"
	"strings"
)

// Describer turns conditions into one-line labels. It is immutable and safe
// for concurrent use; a config reload builds a new one.
type Describer struct {
	lex *Lexicon
}

// NewDescriber creates a Describer over lex. A nil lex uses DefaultLexicon.
func NewDescriber(lex *Lexicon) *Describer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	l := *lex
	if l.Separator == "" {
		l.Separator = DefaultSeparator
	}
	return &Describer{lex: &l}
}

// Lexicon returns the tables the describer renders with.
func (d *Describer) Lexicon() *Lexicon {
	return d.lex
}

// Describe returns the label for c, or "" when c is nil.
func (d *Describer) Describe(c Condition) string {
	switch c := c.(type) {
	case nil:
		return ""
	case *LevelUp:
		return d.levelUp(c)
	case *UseItem:
		if c.Item == "" {
			return string(KindUseItem)
		}
		return "Use item: " + d.lex.Item(c.Item)
	case *Trade:
		var b strings.Builder
		b.WriteString("Trade")
		if c.HeldItem != "" {
			b.WriteString(" holding ")
			b.WriteString(d.lex.Item(c.HeldItem))
		}
		if c.TradeSpecies != "" {
			b.WriteString(" for ")
			b.WriteString(dashesToSpaces(c.TradeSpecies))
		}
		return b.String()
	case *Other:
		return c.Trigger
	default:
		return string(c.Kind())
	}
}

// levelUp assembles the clauses in fixed order; absent fields are skipped.
func (d *Describer) levelUp(c *LevelUp) string {
	var parts []string
	push := func(s string) { parts = append(parts, s) }

	if c.MinLevel != nil {
		push(fmt.Sprintf("Lv %d", *c.MinLevel))
	}
	switch c.TimeOfDay {
	case Day:
		push("Day")
	case Night:
		push("Night")
	}
	if c.MinHappiness != nil {
		push(fmt.Sprintf("Friendship ≥ %d", *c.MinHappiness))
	}
	if c.KnownMoveType != "" {
		push("Knows a " + d.lex.Type(c.KnownMoveType) + "-type move")
	}
	if c.KnownMove != "" {
		push("Knows " + dashesToSpaces(c.KnownMove))
	}
	if c.NeedsRain {
		push("Rain")
	}
	if c.Location != "" {
		push("At " + d.lex.Location(c.Location))
	}
	switch c.Gender {
	case Female:
		push("Female only")
	case Male:
		push("Male only")
	}
	if c.MinAffection != nil {
		push(fmt.Sprintf("Affection ≥ %d", *c.MinAffection))
	}
	if c.MinBeauty != nil {
		push(fmt.Sprintf("Beauty ≥ %d", *c.MinBeauty))
	}
	if c.RelativeStats != nil {
		switch {
		case *c.RelativeStats > 0:
			push("Atk > Def")
		case *c.RelativeStats < 0:
			push("Atk < Def")
		default:
			push("Atk = Def")
		}
	}
	if c.TurnUpsideDown {
		push("Turn device upside down")
	}

	if len(parts) == 0 {
		return "Level up"
	}
	return strings.Join(parts, d.lex.Separator)
}
