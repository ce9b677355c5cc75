package client

import (
	"github.com/monodeal/deal-client-go/internal/game"
	"github.com/monodeal/deal-client-go/internal/game/respond"
	"github.com/monodeal/deal-client-go/internal/game/rules"
	"github.com/monodeal/deal-client-go/internal/game/wizard"
	"github.com/monodeal/deal-client-go/internal/protocol"
)

// CreateRoom asks the server to open a room under the given display name.
func (c *Controller) CreateRoom(playerName string) error {
	c.playerName = playerName
	return c.emit(protocol.CreateRoomIntent{
		RequestID:  protocol.NewRequestID(),
		PlayerName: playerName,
	})
}

// JoinRoom joins an existing room.
func (c *Controller) JoinRoom(roomCode, playerName string) error {
	c.playerName = playerName
	return c.emit(protocol.JoinRoomIntent{
		RequestID:  protocol.NewRequestID(),
		RoomCode:   roomCode,
		PlayerName: playerName,
	})
}

// StartGame starts the game in the joined room.
func (c *Controller) StartGame() error {
	return c.emit(protocol.StartGameIntent{RequestID: protocol.NewRequestID()})
}

// SendChat sends one chat line.
func (c *Controller) SendChat(message string) error {
	if message == "" {
		return nil
	}
	return c.emit(protocol.ChatIntent{
		RequestID: protocol.NewRequestID(),
		Message:   message,
	})
}

// LeaveRoom leaves the room and forgets all room-bound state.
func (c *Controller) LeaveRoom() error {
	err := c.emit(protocol.LeaveRoomIntent{RequestID: protocol.NewRequestID()})
	c.state = nil
	c.playerID = ""
	c.roomCode = ""
	c.chat = nil
	c.gameOver = nil
	c.clearEphemeral()
	return err
}

// DrawCards emits the turn's draw. Legal exactly once, during the local
// player's draw phase.
func (c *Controller) DrawCards() error {
	if c.state == nil {
		return ErrNoGame
	}
	if !rules.CanDraw(c.state, c.playerID) {
		return ErrWrongPhase
	}
	return c.emit(protocol.DrawIntent{RequestID: protocol.NewRequestID()})
}

// EndTurn ends the turn early from the action phase or closes it from the
// finishing phase.
func (c *Controller) EndTurn() error {
	if c.state == nil {
		return ErrNoGame
	}
	if !rules.CanEndTurn(c.state, c.playerID) {
		return ErrWrongPhase
	}
	return c.emit(protocol.EndTurnIntent{RequestID: protocol.NewRequestID()})
}

// PlayAsBank banks any hand card at face value.
func (c *Controller) PlayAsBank(cardID string) error {
	_, card, err := c.playableCard(cardID)
	if err != nil {
		return err
	}
	if card.Value <= 0 {
		return ErrUnknownCard
	}
	return c.emit(protocol.PlayCardIntent{
		RequestID: protocol.NewRequestID(),
		CardID:    card.ID,
		Target:    &protocol.PlayCardTarget{AsBank: true},
	})
}

// StartPlay initiates a card play. Cards with implicit targets emit
// immediately; the rest open a targeting wizard whose steps the caller
// drives via ChoosePlayer/ChooseSet/ChooseColor. useDoubleRent rides only
// on rent plays and requires holding a double-rent card.
func (c *Controller) StartPlay(cardID string, useDoubleRent bool) error {
	me, card, err := c.playableCard(cardID)
	if err != nil {
		return err
	}
	if useDoubleRent &&
		(card.Kind != game.KindRent || !me.HasActionInHand(game.ActionDoubleRent)) {
		useDoubleRent = false
	}
	w, err := wizard.Begin(card, me, c.state, useDoubleRent)
	if err != nil {
		return err
	}
	return c.adoptWizard(w)
}

// StartRearrange opens the wizard that moves a tabled wildcard. Permitted
// during the action and finishing phases.
func (c *Controller) StartRearrange() error {
	if c.state == nil {
		return ErrNoGame
	}
	if !rules.CanRearrange(c.state, c.playerID) {
		return ErrWrongPhase
	}
	me, ok := c.Me()
	if !ok {
		return ErrNoGame
	}
	w, err := wizard.BeginRearrange(me)
	if err != nil {
		return err
	}
	return c.adoptWizard(w)
}

// Wizard returns the in-progress targeting wizard, nil if none.
func (c *Controller) Wizard() *wizard.Wizard { return c.wiz }

// CancelWizard abandons the wizard with no network effect.
func (c *Controller) CancelWizard() { c.wiz = nil }

// ChoosePlayer advances the wizard's player step.
func (c *Controller) ChoosePlayer(playerID string) error {
	if c.wiz == nil {
		return ErrNoWizard
	}
	if err := c.wiz.ChoosePlayer(playerID); err != nil {
		return err
	}
	return c.emitIfDone()
}

// ChooseSet advances the wizard's set step.
func (c *Controller) ChooseSet(color game.Color) error {
	if c.wiz == nil {
		return ErrNoWizard
	}
	if err := c.wiz.ChooseSet(color); err != nil {
		return err
	}
	return c.emitIfDone()
}

// ChooseColor advances the wizard's color step.
func (c *Controller) ChooseColor(color game.Color) error {
	if c.wiz == nil {
		return ErrNoWizard
	}
	if err := c.wiz.ChooseColor(color); err != nil {
		return err
	}
	return c.emitIfDone()
}

// ChooseWildcard advances the rearrange wizard's card step.
func (c *Controller) ChooseWildcard(cardID string) error {
	if c.wiz == nil {
		return ErrNoWizard
	}
	if err := c.wiz.ChooseWildcard(cardID); err != nil {
		return err
	}
	return c.emitIfDone()
}

// adoptWizard either emits a wizard that completed immediately or keeps
// it for the step-driving calls.
func (c *Controller) adoptWizard(w *wizard.Wizard) error {
	if w.Done() {
		in, _ := w.Intent()
		return c.emit(in)
	}
	c.wiz = w
	return nil
}

func (c *Controller) emitIfDone() error {
	if !c.wiz.Done() {
		return nil
	}
	in, _ := c.wiz.Intent()
	c.wiz = nil
	return c.emit(in)
}

func (c *Controller) playableCard(cardID string) (game.Player, game.Card, error) {
	if c.state == nil {
		return game.Player{}, game.Card{}, ErrNoGame
	}
	if !rules.CanPlay(c.state, c.playerID) {
		return game.Player{}, game.Card{}, ErrWrongPhase
	}
	me, ok := c.Me()
	if !ok {
		return game.Player{}, game.Card{}, ErrNoGame
	}
	for _, card := range me.Hand {
		if card.ID == cardID {
			return me, card, nil
		}
	}
	return game.Player{}, game.Card{}, ErrUnknownCard
}

// ToggleDiscard toggles a hand card in the forced-discard selection.
func (c *Controller) ToggleDiscard(cardID string) error {
	if c.state == nil {
		return ErrNoGame
	}
	if !rules.MustDiscard(c.state, c.playerID) {
		return ErrWrongPhase
	}
	me, ok := c.Me()
	if !ok {
		return ErrNoGame
	}
	inHand := false
	for _, card := range me.Hand {
		if card.ID == cardID {
			inHand = true
			break
		}
	}
	if !inHand {
		return ErrUnknownCard
	}
	for i, id := range c.discards {
		if id == cardID {
			c.discards = append(c.discards[:i], c.discards[i+1:]...)
			return nil
		}
	}
	c.discards = append(c.discards, cardID)
	return nil
}

// DiscardSelection returns the current forced-discard selection.
func (c *Controller) DiscardSelection() []string { return c.discards }

// RequiredDiscards is how many cards the local player must discard now.
func (c *Controller) RequiredDiscards() int {
	me, ok := c.Me()
	if !ok || !rules.MustDiscard(c.state, c.playerID) {
		return 0
	}
	return rules.RequiredDiscards(len(me.Hand))
}

// CanDiscard reports whether the discard submission is enabled.
func (c *Controller) CanDiscard() bool {
	me, ok := c.Me()
	if !ok || !rules.MustDiscard(c.state, c.playerID) {
		return false
	}
	return rules.CanDiscard(len(me.Hand), len(c.discards))
}

// SubmitDiscard emits the discard intent carrying exactly the selected
// cards, then clears the selection.
func (c *Controller) SubmitDiscard() error {
	if !c.CanDiscard() {
		return ErrDiscardCount
	}
	ids := c.discards
	c.discards = nil
	return c.emit(protocol.DiscardIntent{
		RequestID: protocol.NewRequestID(),
		CardIDs:   ids,
	})
}

// Role is the local player's relationship to the pending action.
func (c *Controller) Role() respond.Role {
	if c.state == nil {
		return respond.RoleBystander
	}
	return respond.RoleOf(c.state.PendingAction, c.playerID)
}

// ResponseProgress reports responded/(playerCount-1) for broadcast
// demands.
func (c *Controller) ResponseProgress() (responded, total int) {
	if c.state == nil {
		return 0, 0
	}
	return respond.Progress(c.state.PendingAction, len(c.state.Players))
}

// Responder returns the live response builder, creating it when the local
// player is eligible. Nil otherwise.
func (c *Controller) Responder() *respond.Responder {
	if c.responder != nil {
		return c.responder
	}
	if c.state == nil || c.state.PendingAction == nil {
		return nil
	}
	me, ok := c.Me()
	if !ok {
		return nil
	}
	r, err := respond.New(c.state.PendingAction, me)
	if err != nil {
		return nil
	}
	c.responder = r
	return r
}

// AcceptWithPayment submits the accept-with-payment response.
func (c *Controller) AcceptWithPayment() error {
	r := c.Responder()
	if r == nil {
		return ErrNoPendingAction
	}
	in, err := r.AcceptPayment()
	if err != nil {
		return err
	}
	c.responder = nil
	return c.emit(in)
}

// AcceptWithSurrender submits the accept-with-surrender response.
func (c *Controller) AcceptWithSurrender() error {
	r := c.Responder()
	if r == nil {
		return ErrNoPendingAction
	}
	in, err := r.AcceptSurrender()
	if err != nil {
		return err
	}
	c.responder = nil
	return c.emit(in)
}

// Accept submits a bare acceptance for demands with nothing to choose.
func (c *Controller) Accept() error {
	r := c.Responder()
	if r == nil {
		return ErrNoPendingAction
	}
	in := r.Accept()
	c.responder = nil
	return c.emit(in)
}

// Veto submits the veto response.
func (c *Controller) Veto() error {
	r := c.Responder()
	if r == nil {
		return ErrNoPendingAction
	}
	in, err := r.Veto()
	if err != nil {
		return err
	}
	c.responder = nil
	return c.emit(in)
}
