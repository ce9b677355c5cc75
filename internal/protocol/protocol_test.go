package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monodeal/deal-client-go/internal/game"
)

func TestEncodeIntentFramesEnvelope(t *testing.T) {
	in := PlayCardIntent{
		RequestID: "req-1",
		CardID:    "c1",
		Target: &PlayCardTarget{
			PlayerID:         "b",
			PropertySetColor: game.ColorGreen,
			UseDoubleRent:    true,
		},
	}

	raw, err := EncodeIntent(in)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "playCard", env.Type)

	var decoded PlayCardIntent
	require.NoError(t, json.Unmarshal(env.Data, &decoded))
	assert.Equal(t, in, decoded)
}

func TestEncodeIntentOmitsEmptyTargetFields(t *testing.T) {
	raw, err := EncodeIntent(PlayCardIntent{RequestID: "req-2", CardID: "m1", Target: &PlayCardTarget{AsBank: true}})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	var target map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(fields["target"], &target))
	assert.Contains(t, target, "asBank")
	assert.NotContains(t, target, "playerId")
	assert.NotContains(t, target, "useDoubleRent")
}

func TestIntentTypes(t *testing.T) {
	tests := []struct {
		in   Intent
		want string
	}{
		{PlayCardIntent{}, "playCard"},
		{RespondIntent{}, "respondToAction"},
		{DiscardIntent{}, "discardCards"},
		{DrawIntent{}, "drawCards"},
		{EndTurnIntent{}, "endTurn"},
		{RearrangeIntent{}, "rearrangeProperty"},
		{CreateRoomIntent{}, "createRoom"},
		{JoinRoomIntent{}, "joinRoom"},
		{StartGameIntent{}, "startGame"},
		{ChatIntent{}, "sendChat"},
		{LeaveRoomIntent{}, "leaveRoom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.IntentType())
	}
}

func TestDecodeGameStateEvent(t *testing.T) {
	raw := []byte(`{
		"type": "gameState",
		"data": {
			"state": {
				"id": "g1",
				"roomCode": "ROOM42",
				"players": [
					{"id": "a", "name": "Alice", "hand": [
						{"id": "c1", "type": "money", "name": "$5M", "value": 5}
					], "properties": [
						{"color": "red", "cards": [
							{"id": "c2", "type": "property", "name": "red", "value": 3, "color": "red"}
						], "hasHouse": false, "hasHotel": false, "isComplete": false}
					], "bank": [], "isConnected": true},
					{"id": "b", "name": "Bob", "hand": [
						{"id": "hidden", "type": "money", "name": "", "value": 0}
					], "properties": [], "bank": [], "isConnected": true}
				],
				"currentPlayerIndex": 0,
				"deckCount": 80,
				"discardCount": 3,
				"phase": "playing",
				"turnPhase": "action",
				"actionsRemaining": 2
			}
		}
	}`)

	ev, err := DecodeEvent(raw)
	require.NoError(t, err)
	snap, ok := ev.(*GameStateEvent)
	require.True(t, ok)
	require.NotNil(t, snap.State)

	assert.Equal(t, "ROOM42", snap.State.RoomCode)
	assert.Equal(t, game.TurnAction, snap.State.TurnPhase)
	assert.Equal(t, 2, snap.State.ActionsRemaining)
	require.Len(t, snap.State.Players, 2)
	assert.Equal(t, game.KindMoney, snap.State.Players[0].Hand[0].Kind)
	assert.True(t, snap.State.Players[1].Hand[0].IsHidden())
}

func TestDecodePendingAction(t *testing.T) {
	raw := []byte(`{
		"type": "gameState",
		"data": {"state": {
			"id": "g1", "roomCode": "R", "players": [],
			"currentPlayerIndex": 0, "deckCount": 0, "discardCount": 0,
			"phase": "playing", "turnPhase": "responding", "actionsRemaining": 1,
			"pendingAction": {
				"type": "rent",
				"fromPlayerId": "a",
				"amount": 6,
				"targetSet": "green",
				"canSayNo": true,
				"respondedPlayers": ["b"],
				"isDoubleRent": true
			}
		}}
	}`)

	ev, err := DecodeEvent(raw)
	require.NoError(t, err)
	snap := ev.(*GameStateEvent)
	a := snap.State.PendingAction
	require.NotNil(t, a)
	assert.Equal(t, game.PendingRent, a.Type)
	assert.Equal(t, 6, a.Amount)
	assert.True(t, a.IsBroadcast())
	assert.True(t, a.IsDoubleRent)
	assert.True(t, a.HasResponded("b"))
}

func TestDecodeSimpleEvents(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{"type":"error","data":{"message":"not your turn"}}`))
	require.NoError(t, err)
	assert.Equal(t, "not your turn", ev.(*ErrorEvent).Message)

	ev, err = DecodeEvent([]byte(`{"type":"roomJoined","data":{"roomCode":"R1","playerId":"p-9"}}`))
	require.NoError(t, err)
	joined := ev.(*RoomJoinedEvent)
	assert.Equal(t, "R1", joined.RoomCode)
	assert.Equal(t, "p-9", joined.PlayerID)

	ev, err = DecodeEvent([]byte(`{"type":"gameOver","data":{"winnerId":"a","winnerName":"Alice"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Alice", ev.(*GameOverEvent).WinnerName)

	ev, err = DecodeEvent([]byte(`{"type":"playerLeft","data":{"playerId":"b"}}`))
	require.NoError(t, err)
	assert.Equal(t, "b", ev.(*PlayerLeftEvent).PlayerID)
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":"trade","data":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestDecodeRejectsMalformedEnvelope(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":`))
	require.Error(t, err)

	_, err = DecodeEvent([]byte(`{"type":"error","data":{"message":5}}`))
	require.Error(t, err)
}

func TestNewRequestIDUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
