package game

// GamePhase is the coarse lifecycle of a room.
type GamePhase string

const (
	PhaseWaiting  GamePhase = "waiting"
	PhasePlaying  GamePhase = "playing"
	PhaseFinished GamePhase = "finished"
)

// TurnPhase is the fine-grained phase within the current player's turn.
// Transitions are driven solely by server pushes; the client never
// advances the phase on its own.
type TurnPhase string

const (
	TurnDraw       TurnPhase = "draw"
	TurnAction     TurnPhase = "action"
	TurnDiscard    TurnPhase = "discard"
	TurnResponding TurnPhase = "responding"
	TurnFinishing  TurnPhase = "finishing"
)

// GameState is the authoritative snapshot pushed by the server. It is an
// immutable value replaced wholesale on every push; piles are opaque to
// the client beyond their counts.
type GameState struct {
	ID                 string         `json:"id"`
	RoomCode           string         `json:"roomCode"`
	Players            []Player       `json:"players"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	DeckCount          int            `json:"deckCount"`
	DiscardCount       int            `json:"discardCount"`
	Phase              GamePhase      `json:"phase"`
	TurnPhase          TurnPhase      `json:"turnPhase"`
	ActionsRemaining   int            `json:"actionsRemaining"`
	PendingAction      *PendingAction `json:"pendingAction"`
	Winner             string         `json:"winner"`
}

// CurrentPlayer returns the player whose turn it is.
func (g *GameState) CurrentPlayer() (Player, bool) {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return Player{}, false
	}
	return g.Players[g.CurrentPlayerIndex], true
}

// PlayerByID looks a player up by stable ID.
func (g *GameState) PlayerByID(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// PlayerByName looks a player up by display name. Ambiguous under
// duplicate names; used only as a legacy fallback before the server has
// echoed the local player's assigned ID.
func (g *GameState) PlayerByName(name string) (Player, bool) {
	for _, p := range g.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// Opponents returns every player except the one identified by selfID, in
// seating order.
func (g *GameState) Opponents(selfID string) []Player {
	var out []Player
	for _, p := range g.Players {
		if p.ID != selfID {
			out = append(out, p)
		}
	}
	return out
}

// IsTurn reports whether the given player currently holds the turn.
func (g *GameState) IsTurn(playerID string) bool {
	current, ok := g.CurrentPlayer()
	return ok && current.ID == playerID
}
