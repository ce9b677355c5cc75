// Package respond governs how a non-acting player answers the outstanding
// pending action: accept and pay, accept and surrender a card, or veto.
// The server alone decides whether the answer succeeds; every submission
// here is a single fire-and-forget intent.
package respond

import (
	"errors"

	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/game/payment"
	"github.com/monodeal/deal-client-go/internal/protocol"
)

var (
	// ErrNotEligible means the local player has no response to give:
	// originator, bystander, or already counted on a broadcast.
	ErrNotEligible = errors.New("respond: player is not eligible to respond")
	// ErrInsufficientPayment blocks an accept whose selection is below
	// the minimum-payment policy.
	ErrInsufficientPayment = errors.New("respond: selected payment below minimum")
	// ErrNoSurrenderCard blocks a surrender with no card chosen.
	ErrNoSurrenderCard = errors.New("respond: no card selected to surrender")
	// ErrVetoUnavailable blocks a veto when the action cannot be vetoed
	// or the player holds no veto card.
	ErrVetoUnavailable = errors.New("respond: veto not available")
	// ErrInvalidSurrender rejects a card outside the demanded set.
	ErrInvalidSurrender = errors.New("respond: card not in the targeted set")
)

// Role is the local player's relationship to the pending action.
type Role int

const (
	// RoleBystander: explicitly targeted at someone else; nothing to do.
	RoleBystander Role = iota
	// RoleOriginator: read-only waiting view.
	RoleOriginator
	// RoleAlreadyResponded: broadcast action the player already answered;
	// read-only view with the response counter.
	RoleAlreadyResponded
	// RoleEligible: must submit exactly one response.
	RoleEligible
)

var roleNames = map[Role]string{
	RoleBystander:        "BYSTANDER",
	RoleOriginator:       "ORIGINATOR",
	RoleAlreadyResponded: "ALREADY_RESPONDED",
	RoleEligible:         "ELIGIBLE",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "ROLE_UNKNOWN"
}

// RoleOf derives the local player's role. Membership in the responded
// set always wins over targeting: once counted, a player gets the
// read-only view no matter what kind of demand it was. Otherwise the
// player is eligible when explicitly targeted, or when the demand is a
// broadcast they did not originate.
func RoleOf(a *game.PendingAction, playerID string) Role {
	if a == nil {
		return RoleBystander
	}
	if a.FromPlayerID == playerID {
		return RoleOriginator
	}
	if a.HasResponded(playerID) {
		return RoleAlreadyResponded
	}
	if a.ToPlayerID != "" && a.ToPlayerID != playerID {
		return RoleBystander
	}
	return RoleEligible
}

// Progress reports broadcast bookkeeping: how many players have answered
// out of everyone except the originator.
func Progress(a *game.PendingAction, playerCount int) (responded, total int) {
	if a == nil {
		return 0, 0
	}
	return len(a.RespondedPlayers), playerCount - 1
}

// Responder collects the local player's answer to the pending action. It
// is ephemeral: discarded once an intent is emitted or a fresh snapshot
// arrives.
type Responder struct {
	action *game.PendingAction
	self   game.Player

	paymentSelection []string
	surrenderCardID  string
}

// New starts a response against the pending action. Only eligible players
// get a responder.
func New(a *game.PendingAction, self game.Player) (*Responder, error) {
	if RoleOf(a, self.ID) != RoleEligible {
		return nil, ErrNotEligible
	}
	return &Responder{action: a, self: self}, nil
}

// Action returns the demand being answered.
func (r *Responder) Action() *game.PendingAction { return r.action }

// TogglePayment toggles a bank or property card in the payment selection.
// Selection is free-form; only submission is gated.
func (r *Responder) TogglePayment(cardID string) {
	for i, id := range r.paymentSelection {
		if id == cardID {
			r.paymentSelection = append(r.paymentSelection[:i], r.paymentSelection[i+1:]...)
			return
		}
	}
	r.paymentSelection = append(r.paymentSelection, cardID)
}

// PaymentTotal is the face-value sum of the current selection.
func (r *Responder) PaymentTotal() int {
	return payment.Total(r.paymentSelection, r.self)
}

// PaymentDue is the minimum the player must select before an accept is
// enabled.
func (r *Responder) PaymentDue() int {
	return payment.Minimum(r.action.Amount, r.self.LiquidAssets())
}

// CanAcceptPayment reports whether the accept-with-payment submission is
// enabled. A player with zero liquid assets may always accept with an
// empty payment.
func (r *Responder) CanAcceptPayment() bool {
	if !r.action.IsMonetary() {
		return false
	}
	return payment.CanSubmit(r.PaymentTotal(), r.action.Amount, r.self.LiquidAssets())
}

// AcceptPayment submits the accept-with-payment response.
func (r *Responder) AcceptPayment() (protocol.RespondIntent, error) {
	if !r.CanAcceptPayment() {
		return protocol.RespondIntent{}, ErrInsufficientPayment
	}
	return protocol.RespondIntent{
		RequestID:      protocol.NewRequestID(),
		Accept:         true,
		PaymentCardIDs: r.paymentSelection,
	}, nil
}

// SelectSurrender chooses the one card to give up against a steal or
// trade. The card must sit in the demanded set, which must be one of the
// player's incomplete, non-empty sets.
func (r *Responder) SelectSurrender(cardID string) error {
	set, ok := r.surrenderSet()
	if !ok {
		return ErrInvalidSurrender
	}
	for _, c := range set.Cards {
		if c.ID == cardID {
			r.surrenderCardID = cardID
			return nil
		}
	}
	return ErrInvalidSurrender
}

func (r *Responder) surrenderSet() (game.PropertySet, bool) {
	if !r.action.IsStealClass() {
		return game.PropertySet{}, false
	}
	set, ok := r.self.Set(r.action.TargetSet)
	if !ok || !set.Stealable() {
		return game.PropertySet{}, false
	}
	return set, true
}

// CanAcceptSurrender reports whether the accept-with-surrender submission
// is enabled: steal-class demand on an eligible own set, with exactly one
// card chosen.
func (r *Responder) CanAcceptSurrender() bool {
	if r.surrenderCardID == "" {
		return false
	}
	_, ok := r.surrenderSet()
	return ok
}

// AcceptSurrender submits the accept-with-surrender response.
func (r *Responder) AcceptSurrender() (protocol.RespondIntent, error) {
	if !r.CanAcceptSurrender() {
		return protocol.RespondIntent{}, ErrNoSurrenderCard
	}
	return protocol.RespondIntent{
		RequestID:      protocol.NewRequestID(),
		Accept:         true,
		SelectedCardID: r.surrenderCardID,
	}, nil
}

// Accept submits a bare acceptance for demands that carry neither an
// amount nor a card choice, such as a set seizure.
func (r *Responder) Accept() protocol.RespondIntent {
	return protocol.RespondIntent{
		RequestID: protocol.NewRequestID(),
		Accept:    true,
	}
}

// CanVeto reports whether the veto submission is enabled: the action is
// vetoable and the player holds a veto card.
func (r *Responder) CanVeto() bool {
	return r.action.CanSayNo && r.self.HasActionInHand(game.ActionJustSayNo)
}

// Veto submits the veto. It consumes no other selection state; whether
// the veto actually lands is the server's call.
func (r *Responder) Veto() (protocol.RespondIntent, error) {
	if !r.CanVeto() {
		return protocol.RespondIntent{}, ErrVetoUnavailable
	}
	return protocol.RespondIntent{
		RequestID:    protocol.NewRequestID(),
		Accept:       false,
		UseJustSayNo: true,
	}, nil
}
