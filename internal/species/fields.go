package species

import "github.com/gyaneshwarpardhi/evochain/internal/condition"

// Fields is the bag of optional condition fields as it arrives on the wire.
// A nil pointer or empty string means "not a requirement".
type Fields struct {
	Trigger        string `json:"trigger,omitempty"`
	MinLevel       *int   `json:"minLevel,omitempty"`
	Item           string `json:"item,omitempty"`
	HeldItem       string `json:"heldItem,omitempty"`
	TimeOfDay      string `json:"timeOfDay,omitempty"`
	MinHappiness   *int   `json:"minHappiness,omitempty"`
	KnownMoveType  string `json:"knownMoveType,omitempty"`
	KnownMove      string `json:"knownMove,omitempty"`
	Location       string `json:"location,omitempty"`
	NeedsRain      bool   `json:"needsRain,omitempty"`
	Gender         *int   `json:"gender,omitempty"`
	MinAffection   *int   `json:"minAffection,omitempty"`
	MinBeauty      *int   `json:"minBeauty,omitempty"`
	RelativeStats  *int   `json:"relativeStats,omitempty"`
	TurnUpsideDown bool   `json:"turnUpsideDown,omitempty"`
	TradeSpecies   string `json:"tradeSpecies,omitempty"`
}

// merge builds the tagged condition. The trigger always comes from the flat
// record; qualifiers come from details when present, except item and held
// item which fall back to the flat record.
func (f Fields) merge(details *Fields) condition.Condition {
	if f.Trigger == "" {
		return nil
	}
	det := f
	if details != nil {
		det = *details
	}

	switch condition.Kind(f.Trigger) {
	case condition.KindLevelUp:
		return &condition.LevelUp{
			MinLevel:       det.MinLevel,
			TimeOfDay:      condition.TimeOfDay(det.TimeOfDay),
			MinHappiness:   det.MinHappiness,
			KnownMoveType:  det.KnownMoveType,
			KnownMove:      det.KnownMove,
			NeedsRain:      det.NeedsRain,
			Location:       det.Location,
			Gender:         condition.Gender(deref(det.Gender)),
			MinAffection:   det.MinAffection,
			MinBeauty:      det.MinBeauty,
			RelativeStats:  det.RelativeStats,
			TurnUpsideDown: det.TurnUpsideDown,
		}
	case condition.KindUseItem:
		return &condition.UseItem{Item: firstNonEmpty(det.Item, f.Item)}
	case condition.KindTrade:
		return &condition.Trade{
			HeldItem:     firstNonEmpty(det.HeldItem, f.HeldItem),
			TradeSpecies: det.TradeSpecies,
		}
	default:
		return &condition.Other{Trigger: f.Trigger}
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
