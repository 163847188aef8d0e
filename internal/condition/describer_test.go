package condition

import "testing"

func ip(v int) *int { return &v }

type describeCase struct {
	name string
	cond Condition
	want string
}

func TestDescribe(t *testing.T) {
	cases := []describeCase{
		{name: "nil", cond: nil, want: ""},
		// Level-up clauses
		{
			name: "level only",
			cond: &LevelUp{MinLevel: ip(16)},
			want: "Lv 16",
		},
		{
			name: "bare level-up",
			cond: &LevelUp{},
			want: "Level up",
		},
		{
			name: "friendship at night",
			cond: &LevelUp{TimeOfDay: Night, MinHappiness: ip(220)},
			want: "Night • Friendship ≥ 220",
		},
		{
			name: "unknown time of day ignored",
			cond: &LevelUp{MinLevel: ip(5), TimeOfDay: "dusk"},
			want: "Lv 5",
		},
		{
			name: "move type uses type label",
			cond: &LevelUp{KnownMoveType: "FAIRY", MinAffection: ip(2)},
			want: "Knows a Fairy-type move • Affection ≥ 2",
		},
		{
			name: "move name dashes",
			cond: &LevelUp{KnownMove: "ancient-power"},
			want: "Knows ancient power",
		},
		{
			name: "fixed order regardless of field order",
			cond: &LevelUp{
				TurnUpsideDown: true,
				RelativeStats:  ip(1),
				MinBeauty:      ip(171),
				MinAffection:   ip(2),
				Gender:         Male,
				Location:       "eterna-forest",
				NeedsRain:      true,
				KnownMove:      "mimic",
				KnownMoveType:  "rock",
				MinHappiness:   ip(160),
				TimeOfDay:      Day,
				MinLevel:       ip(50),
			},
			want: "Lv 50 • Day • Friendship ≥ 160 • Knows a Rock-type move • Knows mimic • Rain • At Eterna Forest • " +
				"Male only • Affection ≥ 2 • Beauty ≥ 171 • Atk > Def • Turn device upside down",
		},
		{name: "atk below def", cond: &LevelUp{MinLevel: ip(20), RelativeStats: ip(-1)}, want: "Lv 20 • Atk < Def"},
		{name: "atk equals def", cond: &LevelUp{MinLevel: ip(20), RelativeStats: ip(0)}, want: "Lv 20 • Atk = Def"},
		{name: "female", cond: &LevelUp{Gender: Female}, want: "Female only"},
		{name: "unknown location", cond: &LevelUp{Location: "mt-coronet"}, want: "At mt coronet"},
		// Items
		{name: "known item", cond: &UseItem{Item: "Fire-Stone"}, want: "Use item: Fire Stone"},
		{name: "unknown item", cond: &UseItem{Item: "black-augurite"}, want: "Use item: black augurite"},
		{name: "item missing", cond: &UseItem{}, want: "use-item"},
		// Trade
		{name: "plain trade", cond: &Trade{}, want: "Trade"},
		{name: "trade holding", cond: &Trade{HeldItem: "king's-rock"}, want: "Trade holding King's Rock"},
		{name: "trade for species", cond: &Trade{TradeSpecies: "shelmet"}, want: "Trade for shelmet"},
		{name: "trade both", cond: &Trade{HeldItem: "metal-coat", TradeSpecies: "mr-mime"}, want: "Trade holding Metal Coat for mr mime"},
		// Fallback
		{name: "unknown trigger", cond: &Other{Trigger: "tower-of-waters"}, want: "tower-of-waters"},
	}

	d := NewDescriber(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Describe(tc.cond); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDescribe_CustomLexicon(t *testing.T) {
	lex := DefaultLexicon().Merge(&Lexicon{
		Separator: " / ",
		Items:     map[string]string{"Fire-Stone": "Pedra Fogo"},
	})
	d := NewDescriber(lex)

	if got := d.Describe(&UseItem{Item: "fire-stone"}); got != "Use item: Pedra Fogo" {
		t.Errorf("override not applied: %q", got)
	}
	if got := d.Describe(&LevelUp{MinLevel: ip(1), NeedsRain: true}); got != "Lv 1 / Rain" {
		t.Errorf("separator not applied: %q", got)
	}
	if got := d.Describe(&UseItem{Item: "water-stone"}); got != "Use item: Water Stone" {
		t.Errorf("defaults lost on merge: %q", got)
	}
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	base := DefaultLexicon()
	_ = base.Merge(&Lexicon{Types: map[string]string{"fire": "Fogo"}})
	if base.Types["fire"] != "Fire" {
		t.Errorf("base lexicon mutated: %q", base.Types["fire"])
	}
}

func TestIsFallback(t *testing.T) {
	if !IsFallback(&Other{Trigger: "spin"}) {
		t.Errorf("expected Other to be a fallback")
	}
	if IsFallback(&Trade{}) || IsFallback(nil) {
		t.Errorf("expected recognized kinds not to be fallbacks")
	}
}
