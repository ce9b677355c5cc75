package game

// CardKind discriminates the closed set of card shapes on the wire.
type CardKind string

const (
	KindProperty CardKind = "property"
	KindMoney    CardKind = "money"
	KindAction   CardKind = "action"
	KindRent     CardKind = "rent"
)

// ActionType identifies the effect of an action card.
type ActionType string

const (
	ActionDealBreaker   ActionType = "dealBreaker"
	ActionJustSayNo     ActionType = "justSayNo"
	ActionSlyDeal       ActionType = "slyDeal"
	ActionForcedDeal    ActionType = "forcedDeal"
	ActionDebtCollector ActionType = "debtCollector"
	ActionBirthday      ActionType = "birthday"
	ActionPassGo        ActionType = "passGo"
	ActionHouse         ActionType = "house"
	ActionHotel         ActionType = "hotel"
	ActionDoubleRent    ActionType = "doubleRent"
)

// Color identifies a property color group.
type Color string

const (
	ColorBrown     Color = "brown"
	ColorLightBlue Color = "lightBlue"
	ColorPink      Color = "pink"
	ColorOrange    Color = "orange"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorDarkBlue  Color = "darkBlue"
	ColorRailroad  Color = "railroad"
	ColorUtility   Color = "utility"
)

// Colors lists every color group in board order.
var Colors = []Color{
	ColorBrown, ColorLightBlue, ColorPink, ColorOrange, ColorRed,
	ColorYellow, ColorGreen, ColorDarkBlue, ColorRailroad, ColorUtility,
}

// HiddenCardID marks an opponent hand placeholder; the server redacts
// everything but the count.
const HiddenCardID = "hidden"

// Card is the wire representation of any card. Kind selects which of the
// optional fields are meaningful; Value is the face value in millions and
// doubles as bank liquidity and payment worth for every kind.
type Card struct {
	ID    string   `json:"id"`
	Kind  CardKind `json:"type"`
	Name  string   `json:"name"`
	Value int      `json:"value"`

	// Property cards.
	Color          Color   `json:"color,omitempty"`
	IsWildcard     bool    `json:"isWildcard,omitempty"`
	WildcardColors []Color `json:"wildcardColors,omitempty"`

	// Action cards.
	Action ActionType `json:"action,omitempty"`

	// Rent cards.
	RentColors []Color `json:"colors,omitempty"`
	IsWildRent bool    `json:"isWildRent,omitempty"`
}

// IsHidden reports whether the card is an opponent-hand placeholder.
func (c Card) IsHidden() bool {
	return c.ID == HiddenCardID
}

// IsMultiColorWildcard reports whether the card is a wildcard property that
// may be declared (or later rearranged) as more than one color.
func (c Card) IsMultiColorWildcard() bool {
	return c.Kind == KindProperty && c.IsWildcard && len(c.WildcardColors) > 1
}

// IsUniversalWildcard reports whether the wildcard may stand in for any
// color group, as opposed to a dual-color wildcard.
func (c Card) IsUniversalWildcard() bool {
	return c.IsWildcard && len(c.WildcardColors) > 2
}
