package game

// PendingType identifies the single outstanding demand. It covers the
// targeted action-card types plus rent, which is not an action card tag.
type PendingType string

const (
	PendingRent          PendingType = "rent"
	PendingDealBreaker   PendingType = PendingType(ActionDealBreaker)
	PendingSlyDeal       PendingType = PendingType(ActionSlyDeal)
	PendingForcedDeal    PendingType = PendingType(ActionForcedDeal)
	PendingDebtCollector PendingType = PendingType(ActionDebtCollector)
	PendingBirthday      PendingType = PendingType(ActionBirthday)
)

// PendingAction is the one outstanding cross-player demand. It exists iff
// the turn phase is responding for at least one non-originating player,
// and it is cleared only by the next server push.
type PendingAction struct {
	Type         PendingType `json:"type"`
	FromPlayerID string      `json:"fromPlayerId"`
	ToPlayerID   string      `json:"toPlayerId,omitempty"`
	Amount       int         `json:"amount,omitempty"`
	Card         *Card       `json:"card,omitempty"`
	TargetSet    Color       `json:"targetSet,omitempty"`
	TargetCardID string      `json:"targetCardId,omitempty"`
	GiveCardID   string      `json:"giveCardId,omitempty"`
	GiveFromSet  Color       `json:"giveFromSet,omitempty"`
	CanSayNo     bool        `json:"canSayNo"`
	// RespondedPlayers tracks who has already answered a broadcast demand.
	// Nil for single-target demands.
	RespondedPlayers []string `json:"respondedPlayers,omitempty"`
	IsDoubleRent     bool     `json:"isDoubleRent,omitempty"`
}

// IsBroadcast reports whether the demand addresses every opponent rather
// than a single target (birthday, rent charged to all).
func (a *PendingAction) IsBroadcast() bool {
	return a.ToPlayerID == "" || a.RespondedPlayers != nil
}

// HasResponded reports whether the given player already answered a
// broadcast demand.
func (a *PendingAction) HasResponded(playerID string) bool {
	for _, id := range a.RespondedPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}

// IsMonetary reports whether the demand is satisfied with a payment.
func (a *PendingAction) IsMonetary() bool {
	return a.Amount > 0
}

// IsStealClass reports whether the demand takes a single property card
// from one of the target's incomplete sets (accept-with-surrender flow).
// Deal breaker is excluded: it seizes a whole set with no card choice.
func (a *PendingAction) IsStealClass() bool {
	return a.Type == PendingSlyDeal || a.Type == PendingForcedDeal
}
