// Package wizard implements the per-card targeting state machine. One
// wizard exists per initiated action, walks at most three local steps,
// and on completion yields exactly one outbound intent. Cancellation at
// any step discards everything with no network effect.
package wizard

import (
	"errors"

	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/protocol"
)

var (
	// ErrNoEligibleTargets aborts a wizard before a step that would
	// present zero choices; the card must not be initiated at all.
	ErrNoEligibleTargets = errors.New("wizard: no eligible targets")
	// ErrNotPlayable rejects cards that have no standalone play, such as
	// a veto card outside a response window.
	ErrNotPlayable = errors.New("wizard: card cannot be played directly")
	// ErrInvalidChoice rejects a selection outside the offered options.
	ErrInvalidChoice = errors.New("wizard: choice not among eligible options")
	// ErrWrongStep rejects a selection of the wrong kind for the current
	// step.
	ErrWrongStep = errors.New("wizard: selection does not match current step")
)

// Step names the wizard's states.
type Step int

const (
	// StepChooseColor picks the color a wildcard property is played as.
	StepChooseColor Step = iota
	// StepChoosePropertyColor picks which of the player's own sets a rent
	// card charges for.
	StepChoosePropertyColor
	// StepChoosePlayer picks the opponent a targeted action applies to.
	StepChoosePlayer
	// StepChoosePropertySet picks which of the chosen opponent's
	// incomplete sets a steal or trade targets.
	StepChoosePropertySet
	// StepChooseCompleteSet picks which of the chosen opponent's complete
	// sets a seizure takes.
	StepChooseCompleteSet
	// StepChooseWildcardCard picks which tabled wildcard to rearrange.
	StepChooseWildcardCard
	// StepChooseDestinationColor picks where the wildcard moves.
	StepChooseDestinationColor
	// StepDone is terminal; the intent is ready.
	StepDone
)

var stepNames = map[Step]string{
	StepChooseColor:            "CHOOSE_COLOR",
	StepChoosePropertyColor:    "CHOOSE_PROPERTY_COLOR",
	StepChoosePlayer:           "CHOOSE_PLAYER",
	StepChoosePropertySet:      "CHOOSE_PROPERTY_SET",
	StepChooseCompleteSet:      "CHOOSE_COMPLETE_SET",
	StepChooseWildcardCard:     "CHOOSE_WILDCARD_CARD",
	StepChooseDestinationColor: "CHOOSE_DESTINATION_COLOR",
	StepDone:                   "DONE",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "STEP_UNKNOWN"
}

// kind separates the transition tables the wizard runs.
type kind int

const (
	kindWildcardPlacement kind = iota
	kindRent
	kindSteal // sly deal / forced deal
	kindSeize // deal breaker
	kindDebt
	kindRearrange
)

// Wizard accumulates target parameters for one card play. It reads the
// snapshot it was started against and is discarded whenever a newer
// snapshot arrives.
type Wizard struct {
	card game.Card
	kind kind
	step Step

	self      game.Player
	opponents []game.Player

	useDoubleRent bool

	// Accumulated selections.
	chosenColor    game.Color
	chosenPlayer   *game.Player
	wildcard       game.Card
	wildcardSource game.Color

	intent protocol.Intent
}

// Begin starts the wizard for a card played from hand. For cards whose
// target is implicit the returned wizard is already done and carries the
// intent; the caller emits it without presenting any step.
func Begin(card game.Card, self game.Player, g *game.GameState, useDoubleRent bool) (*Wizard, error) {
	w := &Wizard{
		card:          card,
		self:          self,
		opponents:     g.Opponents(self.ID),
		useDoubleRent: useDoubleRent,
	}
	switch card.Kind {
	case game.KindMoney:
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    card.ID,
			Target:    &protocol.PlayCardTarget{AsBank: true},
		})
		return w, nil
	case game.KindProperty:
		return w.beginProperty()
	case game.KindRent:
		return w.beginRent()
	case game.KindAction:
		return w.beginAction()
	}
	return nil, ErrNotPlayable
}

// BeginRearrange starts the wizard that moves one of the player's own
// tabled wildcards to another of its supported colors.
func BeginRearrange(self game.Player) (*Wizard, error) {
	if len(self.RearrangeableWildcards()) == 0 {
		return nil, ErrNoEligibleTargets
	}
	return &Wizard{
		kind: kindRearrange,
		self: self,
		step: StepChooseWildcardCard,
	}, nil
}

func (w *Wizard) beginProperty() (*Wizard, error) {
	if w.card.IsMultiColorWildcard() {
		w.kind = kindWildcardPlacement
		w.step = StepChooseColor
		return w, nil
	}
	w.finish(protocol.PlayCardIntent{
		RequestID: protocol.NewRequestID(),
		CardID:    w.card.ID,
		Target:    &protocol.PlayCardTarget{PropertySetColor: w.card.Color},
	})
	return w, nil
}

func (w *Wizard) beginRent() (*Wizard, error) {
	w.kind = kindRent
	// A wild rent always ends on a player step, so the absence of
	// opponents aborts here rather than mid-wizard.
	if w.card.IsWildRent && len(w.opponents) == 0 {
		return nil, ErrNoEligibleTargets
	}
	matching := w.matchingRentSets()
	if len(matching) == 0 {
		return nil, ErrNoEligibleTargets
	}
	if len(matching) == 1 {
		if w.card.IsWildRent {
			w.chosenColor = matching[0].Color
			w.step = StepChoosePlayer
			return w, nil
		}
		w.finish(w.rentIntent(matching[0].Color, ""))
		return w, nil
	}
	w.step = StepChoosePropertyColor
	return w, nil
}

func (w *Wizard) beginAction() (*Wizard, error) {
	switch w.card.Action {
	case game.ActionSlyDeal, game.ActionForcedDeal:
		w.kind = kindSteal
		if len(w.stealablePlayers()) == 0 {
			return nil, ErrNoEligibleTargets
		}
		w.step = StepChoosePlayer
		return w, nil
	case game.ActionDealBreaker:
		w.kind = kindSeize
		if len(w.seizablePlayers()) == 0 {
			return nil, ErrNoEligibleTargets
		}
		w.step = StepChoosePlayer
		return w, nil
	case game.ActionDebtCollector:
		w.kind = kindDebt
		if len(w.opponents) == 0 {
			return nil, ErrNoEligibleTargets
		}
		w.step = StepChoosePlayer
		return w, nil
	case game.ActionHouse, game.ActionHotel:
		complete := w.self.CompleteSets()
		if len(complete) == 0 {
			return nil, ErrNoEligibleTargets
		}
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.card.ID,
			Target:    &protocol.PlayCardTarget{PropertySetColor: complete[0].Color},
		})
		return w, nil
	case game.ActionPassGo, game.ActionBirthday:
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.card.ID,
		})
		return w, nil
	}
	// Veto and double-rent cards have no standalone play; they ride on a
	// response or on a rent play.
	return nil, ErrNotPlayable
}

// Card returns the card the wizard was started for. Zero for rearrange
// wizards until a wildcard is chosen.
func (w *Wizard) Card() game.Card {
	if w.kind == kindRearrange {
		return w.wildcard
	}
	return w.card
}

// Step returns the wizard's current state.
func (w *Wizard) Step() Step { return w.step }

// Done reports whether the wizard is terminal and its intent is ready.
func (w *Wizard) Done() bool { return w.step == StepDone }

// Intent returns the single outbound intent a completed wizard produced.
func (w *Wizard) Intent() (protocol.Intent, bool) {
	if w.step != StepDone {
		return nil, false
	}
	return w.intent, true
}

func (w *Wizard) finish(in protocol.Intent) {
	w.intent = in
	w.step = StepDone
}

func (w *Wizard) rentIntent(color game.Color, playerID string) protocol.PlayCardIntent {
	return protocol.PlayCardIntent{
		RequestID: protocol.NewRequestID(),
		CardID:    w.card.ID,
		Target: &protocol.PlayCardTarget{
			PropertySetColor: color,
			PlayerID:         playerID,
			UseDoubleRent:    w.useDoubleRent,
		},
	}
}
