// Package payment computes candidate payment totals against a monetary
// demand. Selection is free-form over the responder's bank and tabled
// property cards; only submission is gated, by the minimum-payment policy.
package payment

import "github.com/monodeal/deal-client-go/internal/game"

// Total sums the face value of the selected cards drawn from the player's
// bank or any of their property sets. Unknown IDs contribute nothing.
func Total(selectedIDs []string, p game.Player) int {
	total := 0
	for _, id := range selectedIDs {
		if c, ok := p.LiquidCard(id); ok {
			total += c.Value
		}
	}
	return total
}

// Minimum is the least acceptable payment: the full demand, or everything
// the responder has if that is less. A broke responder owes nothing.
func Minimum(required, liquidAssets int) int {
	if liquidAssets < required {
		return liquidAssets
	}
	return required
}

// CanSubmit reports whether the current selection satisfies the demand.
// With zero liquid assets the demand is satisfied by an empty payment; no
// debt carries over.
func CanSubmit(selectedTotal, required, liquidAssets int) bool {
	if liquidAssets == 0 {
		return true
	}
	return selectedTotal >= Minimum(required, liquidAssets)
}
