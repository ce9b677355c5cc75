// Package protocol defines the JSON wire schema spoken with the rule
// engine: outbound intents and inbound events, both carried in a
// {type, data} envelope.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/monodeal/deal-client-go/internal/game"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Intent is a single outbound fire-and-forget message. The server never
// replies to an intent directly; the next gameState push is the answer.
type Intent interface {
	IntentType() string
}

// PlayCardTarget carries whichever parameters the targeting wizard
// collected for a card play. All fields are optional on the wire.
type PlayCardTarget struct {
	PlayerID         string     `json:"playerId,omitempty"`
	PropertySetColor game.Color `json:"propertySetColor,omitempty"`
	AsBank           bool       `json:"asBank,omitempty"`
	TargetCardID     string     `json:"targetCardId,omitempty"`
	GiveCardID       string     `json:"giveCardId,omitempty"`
	GiveFromSet      game.Color `json:"giveFromSet,omitempty"`
	UseDoubleRent    bool       `json:"useDoubleRent,omitempty"`
}

// PlayCardIntent plays one card from hand, with optional target
// parameters.
type PlayCardIntent struct {
	RequestID string          `json:"requestId"`
	CardID    string          `json:"cardId"`
	Target    *PlayCardTarget `json:"target,omitempty"`
}

func (PlayCardIntent) IntentType() string { return "playCard" }

// RespondIntent answers the outstanding pending action.
type RespondIntent struct {
	RequestID      string   `json:"requestId"`
	Accept         bool     `json:"accept"`
	UseJustSayNo   bool     `json:"useJustSayNo,omitempty"`
	PaymentCardIDs []string `json:"paymentCardIds,omitempty"`
	SelectedCardID string   `json:"selectedCardId,omitempty"`
}

func (RespondIntent) IntentType() string { return "respondToAction" }

// DiscardIntent discards the selected cards at the end of an over-limit
// turn. Cardinality must equal handSize-7; the client gates this before
// sending.
type DiscardIntent struct {
	RequestID string   `json:"requestId"`
	CardIDs   []string `json:"cardIds"`
}

func (DiscardIntent) IntentType() string { return "discardCards" }

// DrawIntent draws the turn's cards.
type DrawIntent struct {
	RequestID string `json:"requestId"`
}

func (DrawIntent) IntentType() string { return "drawCards" }

// EndTurnIntent ends or finishes the turn.
type EndTurnIntent struct {
	RequestID string `json:"requestId"`
}

func (EndTurnIntent) IntentType() string { return "endTurn" }

// RearrangeIntent moves a tabled wildcard between two of its supported
// color sets.
type RearrangeIntent struct {
	RequestID string     `json:"requestId"`
	CardID    string     `json:"cardId"`
	FromColor game.Color `json:"fromColor"`
	ToColor   game.Color `json:"toColor"`
}

func (RearrangeIntent) IntentType() string { return "rearrangeProperty" }

// CreateRoomIntent asks the server to open a new room.
type CreateRoomIntent struct {
	RequestID  string `json:"requestId"`
	PlayerName string `json:"playerName"`
}

func (CreateRoomIntent) IntentType() string { return "createRoom" }

// JoinRoomIntent joins an existing room by code.
type JoinRoomIntent struct {
	RequestID  string `json:"requestId"`
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

func (JoinRoomIntent) IntentType() string { return "joinRoom" }

// StartGameIntent starts the game once the room has enough players.
type StartGameIntent struct {
	RequestID string `json:"requestId"`
}

func (StartGameIntent) IntentType() string { return "startGame" }

// ChatIntent sends a chat line to the room.
type ChatIntent struct {
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

func (ChatIntent) IntentType() string { return "sendChat" }

// LeaveRoomIntent leaves the current room.
type LeaveRoomIntent struct {
	RequestID string `json:"requestId"`
}

func (LeaveRoomIntent) IntentType() string { return "leaveRoom" }

// NewRequestID mints a client-side request ID for an intent. The server
// echoes it only in logs; the client never correlates replies with it.
func NewRequestID() string {
	return uuid.NewString()
}

// EncodeIntent frames an intent into its wire envelope.
func EncodeIntent(in Intent) ([]byte, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal %s intent: %w", in.IntentType(), err)
	}
	return json.Marshal(Envelope{Type: in.IntentType(), Data: data})
}
