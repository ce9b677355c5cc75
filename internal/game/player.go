package game

// PropertySet is one color-keyed bucket of a player's tabled property
// cards. Ownership of a set transfers only via a server-confirmed steal,
// trade, or seizure; the client never moves cards between players itself.
type PropertySet struct {
	Color      Color  `json:"color"`
	Cards      []Card `json:"cards"`
	HasHouse   bool   `json:"hasHouse"`
	HasHotel   bool   `json:"hasHotel"`
	IsComplete bool   `json:"isComplete"`
}

// Stealable reports whether the set is a legal target for a single-card
// steal or trade: incomplete and holding at least one card.
func (s PropertySet) Stealable() bool {
	return !s.IsComplete && len(s.Cards) > 0
}

// Player is one seat in the snapshot. Hand contents are visible only for
// the local player; other hands arrive as hidden placeholders of known
// count.
type Player struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Hand        []Card        `json:"hand"`
	Properties  []PropertySet `json:"properties"`
	Bank        []Card        `json:"bank"`
	IsConnected bool          `json:"isConnected"`
}

// BankTotal sums the face value of the player's banked cards.
func (p Player) BankTotal() int {
	total := 0
	for _, c := range p.Bank {
		total += c.Value
	}
	return total
}

// LiquidAssets is everything the player could surrender against a monetary
// demand: the bank plus every tabled property card at face value.
func (p Player) LiquidAssets() int {
	total := p.BankTotal()
	for _, s := range p.Properties {
		for _, c := range s.Cards {
			total += c.Value
		}
	}
	return total
}

// LiquidCard finds a card by ID in the bank or in any property set.
// Property cards are legal tender; paying with one removes it from its set
// server-side, which may break the set's complete status.
func (p Player) LiquidCard(id string) (Card, bool) {
	for _, c := range p.Bank {
		if c.ID == id {
			return c, true
		}
	}
	for _, s := range p.Properties {
		for _, c := range s.Cards {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Card{}, false
}

// Set returns the player's property set of the given color, if tabled.
func (p Player) Set(color Color) (PropertySet, bool) {
	for _, s := range p.Properties {
		if s.Color == color {
			return s, true
		}
	}
	return PropertySet{}, false
}

// CompleteSets returns the player's completed property sets.
func (p Player) CompleteSets() []PropertySet {
	var sets []PropertySet
	for _, s := range p.Properties {
		if s.IsComplete {
			sets = append(sets, s)
		}
	}
	return sets
}

// StealableSets returns the player's sets that a steal or trade may target.
func (p Player) StealableSets() []PropertySet {
	var sets []PropertySet
	for _, s := range p.Properties {
		if s.Stealable() {
			sets = append(sets, s)
		}
	}
	return sets
}

// HasActionInHand reports whether the player's visible hand holds an
// action card of the given type. Always false for opponents, whose hands
// are hidden.
func (p Player) HasActionInHand(action ActionType) bool {
	for _, c := range p.Hand {
		if c.Kind == KindAction && c.Action == action {
			return true
		}
	}
	return false
}

// TabledWildcard locates a rearrangeable wildcard on the player's board
// and reports which set currently hosts it.
func (p Player) TabledWildcard(cardID string) (Card, Color, bool) {
	for _, s := range p.Properties {
		for _, c := range s.Cards {
			if c.ID == cardID && c.IsMultiColorWildcard() {
				return c, s.Color, true
			}
		}
	}
	return Card{}, "", false
}

// RearrangeableWildcard pairs a tabled wildcard with its current set.
type RearrangeableWildcard struct {
	Card Card
	From Color
}

// RearrangeableWildcards lists every tabled multi-color wildcard the
// player could move to another of its supported colors.
func (p Player) RearrangeableWildcards() []RearrangeableWildcard {
	var out []RearrangeableWildcard
	for _, s := range p.Properties {
		for _, c := range s.Cards {
			if c.IsMultiColorWildcard() {
				out = append(out, RearrangeableWildcard{Card: c, From: s.Color})
			}
		}
	}
	return out
}
