package wizard

import "github.com/monodeal/deal-client-go/internal/game"

// matchingRentSets returns the player's own sets the rent card can charge
// for. A wild rent card with no color list matches every tabled set.
func (w *Wizard) matchingRentSets() []game.PropertySet {
	var sets []game.PropertySet
	for _, s := range w.self.Properties {
		if len(s.Cards) == 0 {
			continue
		}
		if w.card.IsWildRent && len(w.card.RentColors) == 0 {
			sets = append(sets, s)
			continue
		}
		for _, c := range w.card.RentColors {
			if s.Color == c {
				sets = append(sets, s)
				break
			}
		}
	}
	return sets
}

// stealablePlayers returns opponents owning at least one incomplete,
// non-empty set.
func (w *Wizard) stealablePlayers() []game.Player {
	var out []game.Player
	for _, p := range w.opponents {
		if len(p.StealableSets()) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// seizablePlayers returns opponents owning at least one complete set.
func (w *Wizard) seizablePlayers() []game.Player {
	var out []game.Player
	for _, p := range w.opponents {
		if len(p.CompleteSets()) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// PlayerOptions lists the players the current ChoosePlayer step offers,
// filtered by the action's eligibility rule.
func (w *Wizard) PlayerOptions() []game.Player {
	if w.step != StepChoosePlayer {
		return nil
	}
	switch w.kind {
	case kindSteal:
		return w.stealablePlayers()
	case kindSeize:
		return w.seizablePlayers()
	default: // debt collector and wild rent target anyone
		return w.opponents
	}
}

// SetOptions lists the property sets the current set-selection step
// offers.
func (w *Wizard) SetOptions() []game.PropertySet {
	switch w.step {
	case StepChoosePropertyColor:
		return w.matchingRentSets()
	case StepChoosePropertySet:
		if w.chosenPlayer == nil {
			return nil
		}
		return w.chosenPlayer.StealableSets()
	case StepChooseCompleteSet:
		if w.chosenPlayer == nil {
			return nil
		}
		return w.chosenPlayer.CompleteSets()
	}
	return nil
}

// ColorOptions lists the colors the current color-selection step offers.
func (w *Wizard) ColorOptions() []game.Color {
	switch w.step {
	case StepChooseColor:
		return w.card.WildcardColors
	case StepChooseDestinationColor:
		var out []game.Color
		for _, c := range w.wildcard.WildcardColors {
			if c != w.wildcardSource {
				out = append(out, c)
			}
		}
		return out
	}
	return nil
}

// WildcardOptions lists the tabled wildcards a rearrange wizard offers.
func (w *Wizard) WildcardOptions() []game.RearrangeableWildcard {
	if w.step != StepChooseWildcardCard {
		return nil
	}
	return w.self.RearrangeableWildcards()
}
