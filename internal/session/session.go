// Package session owns the websocket connection to the rule engine. It
// decodes inbound events onto a single channel, queues outbound intents
// fire-and-forget, and redials with a bounded reconnect policy. The next
// snapshot after a reconnect rebuilds all client state, so nothing is
// replayed.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/monodeal/deal-client-go/internal/config"
	"github.com/monodeal/deal-client-go/internal/protocol"
	"go.uber.org/zap"
)

// ErrClosed is returned by Send after the session shut down.
var ErrClosed = errors.New("session: closed")

const sendQueueSize = 64

// Session is a live connection to the server.
type Session struct {
	cfg    config.ServerConfig
	logger *zap.Logger

	events chan protocol.Event
	sendq  chan []byte

	connected atomic.Bool
	closed    chan struct{}
}

// Dial connects to the configured server and starts the read and write
// pumps. Run must be called to drive reconnection.
func Dial(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger) (*Session, error) {
	s := &Session{
		cfg:    cfg,
		logger: logger,
		events: make(chan protocol.Event, 16),
		sendq:  make(chan []byte, sendQueueSize),
		closed: make(chan struct{}),
	}
	conn, err := s.dial(ctx)
	if err != nil {
		return nil, err
	}
	go s.run(ctx, conn)
	return s, nil
}

func (s *Session) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", s.cfg.URL, err)
	}
	s.connected.Store(true)
	s.logger.Info("connected", zap.String("url", s.cfg.URL))
	return conn, nil
}

// run alternates between pumping a live connection and redialing. It owns
// the connection exclusively.
func (s *Session) run(ctx context.Context, conn *websocket.Conn) {
	defer close(s.events)
	for {
		err := s.pump(ctx, conn)
		s.connected.Store(false)
		conn.Close()
		if ctx.Err() != nil || s.isClosed() {
			return
		}
		s.logger.Warn("connection lost", zap.Error(err))

		conn = s.redial(ctx)
		if conn == nil {
			return
		}
	}
}

// pump reads inbound frames and writes queued intents until the
// connection fails or the session closes.
func (s *Session) pump(ctx context.Context, conn *websocket.Conn) error {
	readErr := make(chan error, 1)
	go func() {
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			ev, err := protocol.DecodeEvent(raw)
			if err != nil {
				s.logger.Warn("dropping undecodable event", zap.Error(err))
				continue
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
	}()

	for {
		select {
		case msg := <-s.sendq:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := conn.SetWriteDeadline(deadline); err != nil {
				return err
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case err := <-readErr:
			return err
		case <-ctx.Done():
			return ctx.Err()
		case <-s.closed:
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return ErrClosed
		}
	}
}

// redial retries the configured number of times. Returns nil when the
// attempts are exhausted or the context ends.
func (s *Session) redial(ctx context.Context) *websocket.Conn {
	for attempt := 1; attempt <= s.cfg.ReconnectAttempts; attempt++ {
		select {
		case <-time.After(s.cfg.ReconnectDelay):
		case <-ctx.Done():
			return nil
		case <-s.closed:
			return nil
		}
		conn, err := s.dial(ctx)
		if err == nil {
			return conn
		}
		s.logger.Warn("reconnect failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.ReconnectAttempts),
			zap.Error(err),
		)
	}
	s.logger.Error("reconnect attempts exhausted")
	return nil
}

// Events is the single-writer stream of decoded server events. It closes
// when the session ends for good.
func (s *Session) Events() <-chan protocol.Event {
	return s.events
}

// Send queues one intent, fire-and-forget. There is no reply and no
// retraction; the next gameState push is authoritative.
func (s *Session) Send(in protocol.Intent) error {
	msg, err := protocol.EncodeIntent(in)
	if err != nil {
		return err
	}
	select {
	case s.sendq <- msg:
		s.logger.Debug("intent queued", zap.String("type", in.IntentType()))
		return nil
	case <-s.closed:
		return ErrClosed
	}
}

// Connected reports whether the socket is currently up. A false value is
// surfaced as a persistent banner, not an error; local state stays intact
// until the next snapshot replaces it.
func (s *Session) Connected() bool {
	return s.connected.Load()
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// Close shuts the session down. Safe to call once.
func (s *Session) Close() {
	close(s.closed)
}
