package condition

// Kind is the trigger tag of an evolution condition.
type Kind string

const (
	KindLevelUp Kind = "level-up"
	KindUseItem Kind = "use-item"
	KindTrade   Kind = "trade"
)

// Condition is the tagged union of evolution triggers. A nil Condition means
// the edge carries no condition data at all.
type Condition interface {
	Kind() Kind
}

// TimeOfDay restricts a level-up to part of the day. Values other than
// day and night are ignored.
type TimeOfDay string

const (
	Day   TimeOfDay = "day"
	Night TimeOfDay = "night"
)

// Gender restricts an evolution to one gender, using the data source's codes.
type Gender int

const (
	AnyGender Gender = 0
	Female    Gender = 1
	Male      Gender = 2
)

// LevelUp holds the qualifiers of a level-up trigger. Every field is optional.
type LevelUp struct {
	MinLevel      *int
	TimeOfDay     TimeOfDay
	MinHappiness  *int
	KnownMoveType string
	KnownMove     string
	NeedsRain     bool
	Location      string
	Gender        Gender
	MinAffection  *int
	MinBeauty     *int
	// RelativeStats compares attack to defense: >0, <0 or 0 when set.
	RelativeStats  *int
	TurnUpsideDown bool
}

func (*LevelUp) Kind() Kind { return KindLevelUp }

// UseItem is an evolution triggered by using an item on the species.
type UseItem struct {
	Item string
}

func (*UseItem) Kind() Kind { return KindUseItem }

// Trade is an evolution triggered by trading, optionally while holding an
// item or in exchange for a specific species.
type Trade struct {
	HeldItem     string
	TradeSpecies string
}

func (*Trade) Kind() Kind { return KindTrade }

// Other is any trigger kind the describer has no phrasing for.
type Other struct {
	Trigger string
}

func (o *Other) Kind() Kind { return Kind(o.Trigger) }

// IsFallback reports whether c is an unrecognized trigger that will be
// described by its raw token.
func IsFallback(c Condition) bool {
	_, ok := c.(*Other)
	return ok
}
