// Package rules gates which intents the local player may legally emit for
// a given snapshot. The server remains the single source of truth; these
// checks only stop requests that are malformed on their face.
package rules

import "github.com/monodeal/deal-client-go/internal/game"

// MaxHandSize is the hand limit enforced at turn end; anything above it
// must be discarded before the turn can close.
const MaxHandSize = 7

// CanDraw reports whether a draw intent is legal: it is the player's turn
// and the turn is in its draw phase.
func CanDraw(g *game.GameState, playerID string) bool {
	return g.IsTurn(playerID) && g.TurnPhase == game.TurnDraw
}

// CanPlay reports whether any card may be played: the player's own action
// phase with at least one action unit left.
func CanPlay(g *game.GameState, playerID string) bool {
	return g.IsTurn(playerID) && g.TurnPhase == game.TurnAction && g.ActionsRemaining > 0
}

// CanRearrange reports whether wildcard rearrangement is permitted.
// Allowed during the action phase and again while finishing, after all
// action units are spent.
func CanRearrange(g *game.GameState, playerID string) bool {
	if !g.IsTurn(playerID) {
		return false
	}
	return g.TurnPhase == game.TurnAction || g.TurnPhase == game.TurnFinishing
}

// CanEndTurn reports whether an end-turn intent is legal. The turn may be
// ended early from the action phase or closed out from the finishing
// phase; a forced discard blocks it.
func CanEndTurn(g *game.GameState, playerID string) bool {
	if !g.IsTurn(playerID) {
		return false
	}
	return g.TurnPhase == game.TurnAction || g.TurnPhase == game.TurnFinishing
}

// MustDiscard reports whether the player is in the forced-discard phase.
func MustDiscard(g *game.GameState, playerID string) bool {
	return g.IsTurn(playerID) && g.TurnPhase == game.TurnDiscard
}

// RequiredDiscards is how many cards must be discarded for the given hand
// size; zero when the hand is within the limit.
func RequiredDiscards(handSize int) int {
	if handSize <= MaxHandSize {
		return 0
	}
	return handSize - MaxHandSize
}

// CanDiscard reports whether the discard intent may be submitted: exactly
// the required number of cards selected, and at least one.
func CanDiscard(handSize, selected int) bool {
	required := RequiredDiscards(handSize)
	return required > 0 && selected == required
}
