package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/monodeal/deal-client-go/internal/game"
)

// Event is a single inbound message from the server.
type Event interface {
	EventType() string
}

// GameStateEvent carries a full authoritative snapshot. Every push
// replaces the previous snapshot wholesale.
type GameStateEvent struct {
	State *game.GameState `json:"state"`
}

func (GameStateEvent) EventType() string { return "gameState" }

// ChatMessage is one line of the room transcript.
type ChatMessage struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	System     bool      `json:"system,omitempty"`
}

// ChatMessageEvent delivers a chat or system line.
type ChatMessageEvent struct {
	Message ChatMessage `json:"message"`
}

func (ChatMessageEvent) EventType() string { return "chatMessage" }

// ErrorEvent surfaces a server rejection or protocol error. Transient;
// the client clears it after a fixed interval.
type ErrorEvent struct {
	Message string `json:"message"`
}

func (ErrorEvent) EventType() string { return "error" }

// RoomJoinedEvent acknowledges a createRoom or joinRoom intent and echoes
// the stable player ID the server assigned to this session. Receiving it
// before any snapshot removes the need for name-based self matching.
type RoomJoinedEvent struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

func (RoomJoinedEvent) EventType() string { return "roomJoined" }

// PlayerJoinedEvent announces a new player in the room.
type PlayerJoinedEvent struct {
	Player game.Player `json:"player"`
}

func (PlayerJoinedEvent) EventType() string { return "playerJoined" }

// PlayerLeftEvent announces a departure.
type PlayerLeftEvent struct {
	PlayerID string `json:"playerId"`
}

func (PlayerLeftEvent) EventType() string { return "playerLeft" }

// GameOverEvent is the terminal banner condition.
type GameOverEvent struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

func (GameOverEvent) EventType() string { return "gameOver" }

// DecodeEvent parses an inbound envelope into its typed event.
func DecodeEvent(raw []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	var ev Event
	switch env.Type {
	case "gameState":
		ev = &GameStateEvent{}
	case "chatMessage":
		ev = &ChatMessageEvent{}
	case "error":
		ev = &ErrorEvent{}
	case "roomJoined":
		ev = &RoomJoinedEvent{}
	case "playerJoined":
		ev = &PlayerJoinedEvent{}
	case "playerLeft":
		ev = &PlayerLeftEvent{}
	case "gameOver":
		ev = &GameOverEvent{}
	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, ev); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", env.Type, err)
		}
	}
	return ev, nil
}
