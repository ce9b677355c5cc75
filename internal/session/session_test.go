package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monodeal/deal-client-go/internal/config"
	"github.com/monodeal/deal-client-go/internal/protocol"
)

var upgrader = websocket.Upgrader{}

// echoServer upgrades each connection and hands it to the given handler.
func echoServer(t *testing.T, handle func(*websocket.Conn)) (*httptest.Server, config.ServerConfig) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn)
	}))
	t.Cleanup(srv.Close)

	cfg := config.ServerConfig{
		URL:               "ws" + strings.TrimPrefix(srv.URL, "http"),
		ReconnectAttempts: 1,
		ReconnectDelay:    10 * time.Millisecond,
		WriteTimeout:      time.Second,
	}
	return srv, cfg
}

func TestSendDeliversEnvelope(t *testing.T) {
	received := make(chan []byte, 1)
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- raw
		conn.ReadMessage() // hold the connection open until the client leaves
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Send(protocol.DrawIntent{RequestID: "req-1"}))

	select {
	case raw := <-received:
		ev := string(raw)
		assert.Contains(t, ev, `"type":"drawCards"`)
		assert.Contains(t, ev, `"requestId":"req-1"`)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the intent")
	}
}

func TestServerPushYieldsTypedEvent(t *testing.T) {
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		msg := `{"type":"roomJoined","data":{"roomCode":"R1","playerId":"p-1"}}`
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			return
		}
		conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	select {
	case ev := <-s.Events():
		joined, ok := ev.(*protocol.RoomJoinedEvent)
		require.True(t, ok)
		assert.Equal(t, "R1", joined.RoomCode)
		assert.Equal(t, "p-1", joined.PlayerID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event arrived")
	}
}

func TestUndecodableFramesAreDropped(t *testing.T) {
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"bogus"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","data":{"message":"late"}}`))
		conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	select {
	case ev := <-s.Events():
		errEv, ok := ev.(*protocol.ErrorEvent)
		require.True(t, ok, "the bogus frame must be skipped, not delivered")
		assert.Equal(t, "late", errEv.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no event arrived")
	}
}

func TestConnectedFlag(t *testing.T) {
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, s.Connected())

	s.Close()
	require.Eventually(t, func() bool { return !s.Connected() },
		2*time.Second, 10*time.Millisecond)
}

func TestEventsCloseAfterShutdown(t *testing.T) {
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	s.Close()

	select {
	case _, open := <-s.Events():
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel never closed")
	}
}

func TestRedialAfterConnectionLoss(t *testing.T) {
	var conns atomic.Int32
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		if conns.Add(1) == 1 {
			return // drop the first connection immediately
		}
		conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":"error","data":{"message":"back"}}`))
		conn.ReadMessage()
	})
	cfg.ReconnectAttempts = 5

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	select {
	case ev := <-s.Events():
		errEv, ok := ev.(*protocol.ErrorEvent)
		require.True(t, ok)
		assert.Equal(t, "back", errEv.Message)
	case <-time.After(3 * time.Second):
		t.Fatal("session never recovered after the dropped connection")
	}
	assert.EqualValues(t, 2, conns.Load())
	assert.True(t, s.Connected())
}

func TestDialFailure(t *testing.T) {
	cfg := config.ServerConfig{
		URL:          "ws://127.0.0.1:1/ws",
		WriteTimeout: time.Second,
	}
	_, err := Dial(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
}

func TestSendAfterClose(t *testing.T) {
	_, cfg := echoServer(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Dial(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	s.Close()

	// The queue may absorb a few sends, but once it fills every further
	// send must fail instead of blocking.
	var sendErr error
	for i := 0; i < sendQueueSize+1; i++ {
		if sendErr = s.Send(protocol.DrawIntent{RequestID: "r"}); sendErr != nil {
			break
		}
	}
	assert.ErrorIs(t, sendErr, ErrClosed)
}
