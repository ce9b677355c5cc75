// Package client is the presentation-client core: it holds the latest
// authoritative snapshot, the local player's identity, and the ephemeral
// wizard, responder, and discard selections built on top of it. Every
// operation is gated locally so malformed requests never reach the
// network, then emits exactly one intent. The controller is driven by a
// single event loop and is not safe for concurrent use.
package client

import (
	"errors"
	"time"

	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/game/respond"
	"github.com/monodeal/deal-client-go/internal/game/wizard"
	"github.com/monodeal/deal-client-go/internal/protocol"
	"go.uber.org/zap"
)

var (
	// ErrWrongPhase rejects an operation outside its legal turn phase.
	ErrWrongPhase = errors.New("client: not permitted in current phase")
	// ErrUnknownCard rejects a card ID not found where expected.
	ErrUnknownCard = errors.New("client: card not found")
	// ErrNoWizard means no targeting wizard is in progress.
	ErrNoWizard = errors.New("client: no wizard in progress")
	// ErrNoPendingAction means there is nothing to respond to.
	ErrNoPendingAction = errors.New("client: no pending action")
	// ErrDiscardCount blocks a discard whose selection size is not
	// exactly handSize-7.
	ErrDiscardCount = errors.New("client: discard selection incomplete")
	// ErrNoGame means no snapshot has arrived yet.
	ErrNoGame = errors.New("client: no game state")
)

// errorTTL is how long a transient server error stays visible.
const errorTTL = 5 * time.Second

// chatLimit bounds the retained transcript.
const chatLimit = 200

// Sender emits outbound intents; satisfied by *session.Session.
type Sender interface {
	Send(protocol.Intent) error
}

// GameOver is the terminal banner condition.
type GameOver struct {
	WinnerID   string
	WinnerName string
}

// Controller ties snapshot, identity, and ephemeral decision state
// together.
type Controller struct {
	logger *zap.Logger
	sender Sender
	now    func() time.Time

	playerName string
	playerID   string
	roomCode   string

	state      *game.GameState
	generation uint64

	wiz       *wizard.Wizard
	responder *respond.Responder
	discards  []string

	errMsg    string
	errExpiry time.Time

	chat     []protocol.ChatMessage
	gameOver *GameOver
}

// New creates a controller bound to a sender.
func New(sender Sender, playerName string, logger *zap.Logger) *Controller {
	return &Controller{
		logger:     logger,
		sender:     sender,
		now:        time.Now,
		playerName: playerName,
	}
}

// HandleEvent folds one inbound server event into the controller.
func (c *Controller) HandleEvent(ev protocol.Event) {
	switch e := ev.(type) {
	case *protocol.GameStateEvent:
		c.applySnapshot(e.State)
	case *protocol.ErrorEvent:
		// A rejection invalidates whatever decision produced it; the
		// player restarts from the current snapshot.
		c.setError(e.Message)
		c.clearEphemeral()
	case *protocol.RoomJoinedEvent:
		c.roomCode = e.RoomCode
		c.playerID = e.PlayerID
		c.logger.Info("room joined",
			zap.String("room", e.RoomCode),
			zap.String("player_id", e.PlayerID),
		)
	case *protocol.GameOverEvent:
		c.gameOver = &GameOver{WinnerID: e.WinnerID, WinnerName: e.WinnerName}
	case *protocol.ChatMessageEvent:
		c.chat = append(c.chat, e.Message)
		if len(c.chat) > chatLimit {
			c.chat = c.chat[len(c.chat)-chatLimit:]
		}
	case *protocol.PlayerJoinedEvent:
		c.logger.Info("player joined", zap.String("name", e.Player.Name))
	case *protocol.PlayerLeftEvent:
		c.logger.Info("player left", zap.String("player_id", e.PlayerID))
	}
}

// applySnapshot replaces the snapshot wholesale and discards every local
// selection: a wizard built against a stale generation must not survive.
func (c *Controller) applySnapshot(s *game.GameState) {
	c.state = s
	c.generation++
	c.clearEphemeral()
	c.resolveIdentity()
	if s.Winner != "" && c.gameOver == nil {
		if winner, ok := s.PlayerByID(s.Winner); ok {
			c.gameOver = &GameOver{WinnerID: winner.ID, WinnerName: winner.Name}
		}
	}
}

func (c *Controller) clearEphemeral() {
	c.wiz = nil
	c.responder = nil
	c.discards = nil
}

// resolveIdentity pins down who the local player is. The server-assigned
// ID from the roomJoined ack always wins; matching by display name (then
// by hand visibility) remains only for servers that never sent the ack,
// and is ambiguous under duplicate names.
func (c *Controller) resolveIdentity() {
	if c.playerID != "" {
		if _, ok := c.state.PlayerByID(c.playerID); ok {
			return
		}
	}
	if p, ok := c.state.PlayerByName(c.playerName); ok {
		c.playerID = p.ID
		return
	}
	for _, p := range c.state.Players {
		for _, card := range p.Hand {
			if !card.IsHidden() {
				c.playerID = p.ID
				return
			}
		}
	}
}

// State returns the latest snapshot, which may be nil before the first
// push.
func (c *Controller) State() *game.GameState { return c.state }

// Generation counts snapshot replacements; it increments on every push.
func (c *Controller) Generation() uint64 { return c.generation }

// PlayerID is the resolved local player ID, empty until known.
func (c *Controller) PlayerID() string { return c.playerID }

// RoomCode is the joined room's code.
func (c *Controller) RoomCode() string { return c.roomCode }

// Me returns the local player's seat in the current snapshot.
func (c *Controller) Me() (game.Player, bool) {
	if c.state == nil || c.playerID == "" {
		return game.Player{}, false
	}
	return c.state.PlayerByID(c.playerID)
}

// Err returns the transient error text, or empty once it has expired.
func (c *Controller) Err() string {
	if c.errMsg == "" || c.now().After(c.errExpiry) {
		return ""
	}
	return c.errMsg
}

func (c *Controller) setError(msg string) {
	c.errMsg = msg
	c.errExpiry = c.now().Add(errorTTL)
	c.logger.Warn("server error", zap.String("message", msg))
}

// ClearErr dismisses the transient error early.
func (c *Controller) ClearErr() { c.errMsg = "" }

// GameOverBanner returns the terminal banner once the game has a winner.
func (c *Controller) GameOverBanner() *GameOver { return c.gameOver }

// Chat returns the retained transcript.
func (c *Controller) Chat() []protocol.ChatMessage { return c.chat }

func (c *Controller) emit(in protocol.Intent) error {
	if err := c.sender.Send(in); err != nil {
		c.setError(err.Error())
		return err
	}
	return nil
}
