package wizard

import (
	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/protocol"
)

// ChoosePlayer resolves the ChoosePlayer step. For debt collection the
// wizard completes; for steals and seizures it advances to the matching
// set-selection step, which the eligibility filter guarantees is
// non-empty.
func (w *Wizard) ChoosePlayer(playerID string) error {
	if w.step != StepChoosePlayer {
		return ErrWrongStep
	}
	var chosen *game.Player
	for _, p := range w.PlayerOptions() {
		if p.ID == playerID {
			chosen = &p
			break
		}
	}
	if chosen == nil {
		return ErrInvalidChoice
	}
	w.chosenPlayer = chosen

	switch w.kind {
	case kindSteal:
		w.step = StepChoosePropertySet
	case kindSeize:
		w.step = StepChooseCompleteSet
	case kindDebt:
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.card.ID,
			Target:    &protocol.PlayCardTarget{PlayerID: chosen.ID},
		})
	case kindRent: // wild rent: color already fixed
		w.finish(w.rentIntent(w.chosenColor, chosen.ID))
	default:
		return ErrWrongStep
	}
	return nil
}

// ChooseSet resolves the set-selection steps by color: which own set to
// charge rent for, or which of the chosen opponent's sets to take.
func (w *Wizard) ChooseSet(color game.Color) error {
	options := w.SetOptions()
	var chosen *game.PropertySet
	for _, s := range options {
		if s.Color == color {
			chosen = &s
			break
		}
	}

	switch w.step {
	case StepChoosePropertyColor:
		if chosen == nil {
			return ErrInvalidChoice
		}
		if w.card.IsWildRent {
			w.chosenColor = chosen.Color
			w.step = StepChoosePlayer
			return nil
		}
		w.finish(w.rentIntent(chosen.Color, ""))
		return nil
	case StepChoosePropertySet, StepChooseCompleteSet:
		if chosen == nil {
			return ErrInvalidChoice
		}
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.card.ID,
			Target: &protocol.PlayCardTarget{
				PlayerID:         w.chosenPlayer.ID,
				PropertySetColor: chosen.Color,
			},
		})
		return nil
	}
	return ErrWrongStep
}

// ChooseColor resolves the color-selection steps: declaring a wildcard's
// color at play time, or picking a rearrange destination.
func (w *Wizard) ChooseColor(color game.Color) error {
	valid := false
	for _, c := range w.ColorOptions() {
		if c == color {
			valid = true
			break
		}
	}

	switch w.step {
	case StepChooseColor:
		if !valid {
			return ErrInvalidChoice
		}
		w.finish(protocol.PlayCardIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.card.ID,
			Target:    &protocol.PlayCardTarget{PropertySetColor: color},
		})
		return nil
	case StepChooseDestinationColor:
		if !valid {
			return ErrInvalidChoice
		}
		w.finish(protocol.RearrangeIntent{
			RequestID: protocol.NewRequestID(),
			CardID:    w.wildcard.ID,
			FromColor: w.wildcardSource,
			ToColor:   color,
		})
		return nil
	}
	return ErrWrongStep
}

// ChooseWildcard resolves the rearrange wizard's first step. Every
// rearrangeable wildcard supports at least one destination besides its
// current set, so the destination step is never empty.
func (w *Wizard) ChooseWildcard(cardID string) error {
	if w.step != StepChooseWildcardCard {
		return ErrWrongStep
	}
	for _, rw := range w.WildcardOptions() {
		if rw.Card.ID == cardID {
			destinations := 0
			for _, c := range rw.Card.WildcardColors {
				if c != rw.From {
					destinations++
				}
			}
			if destinations == 0 {
				return ErrNoEligibleTargets
			}
			w.wildcard = rw.Card
			w.wildcardSource = rw.From
			w.step = StepChooseDestinationColor
			return nil
		}
	}
	return ErrInvalidChoice
}
