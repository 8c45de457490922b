package alphasuite

import (
	"sync"
	"time"

	"github.com/bvkgo/topic"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSClient owns the persistent push channel to the backend dashboard feed.
// It is the only writer of the connection state; routing of inbound frames is
// delegated to a handler callback.
type WSClient struct {
	url       string
	policy    ReconnectPolicy
	heartbeat time.Duration
	logger    *zap.Logger

	handler func([]byte)

	mu    sync.Mutex
	conn  *websocket.Conn
	state ConnState

	writeMu sync.Mutex

	states *topic.Topic[ConnState]

	heartbeatOnce sync.Once
}

// NewWSClient creates a push-channel client. The policy controls reconnect
// pacing; heartbeat is the keepalive send interval.
func NewWSClient(url string, policy ReconnectPolicy, heartbeat time.Duration, logger *zap.Logger) *WSClient {
	c := &WSClient{
		url:       url,
		policy:    policy,
		heartbeat: heartbeat,
		logger:    logger,
		state:     StateDisconnected,
		states:    topic.New[ConnState](),
	}
	// Publish the initial state so subscribers see it even before the first
	// transition.
	c.states.Send(c.state)
	return c
}

// SetMessageHandler sets the function to handle incoming frames.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// State returns the current connection state.
func (c *WSClient) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StatesCh subscribes to connection-state transitions. The current state is
// delivered first. The returned func cancels the subscription.
func (c *WSClient) StatesCh() (<-chan ConnState, func()) {
	sub, ch, _ := c.states.Subscribe(1, true /* includeRecent */)
	return ch, sub.Unsubscribe
}

func (c *WSClient) setState(s ConnState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	c.states.Send(s)
}

// Connect attempts to establish the push channel once. On failure the state
// is left Disconnected and Listen will keep retrying per the policy.
func (c *WSClient) Connect() error {
	c.setState(StateConnecting)

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.setState(StateDisconnected)
		c.logger.Warn("failed to connect to push channel", zap.String("url", c.url), zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.setState(StateOpen)
	c.logger.Info("push channel connected", zap.String("url", c.url))

	c.heartbeatOnce.Do(func() {
		if c.heartbeat > 0 {
			go c.heartbeatLoop()
		}
	})
	return nil
}

// Listen consumes frames from the channel and feeds them to the handler.
// When the connection drops (or was never opened), it reconnects per the
// policy with a fresh connection; the old one is discarded. Listen returns
// only if the policy gives up.
func (c *WSClient) Listen() {
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()

		if conn == nil {
			if !c.reconnect() {
				return
			}
			continue
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			c.logger.Warn("push channel read error", zap.Error(err))
			c.drop(conn)
			if !c.reconnect() {
				return
			}
			continue
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

// drop closes and forgets the given connection. A connection is never reused
// after a read error.
func (c *WSClient) drop(conn *websocket.Conn) {
	c.setState(StateClosing)
	_ = conn.Close()
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()
	c.setState(StateDisconnected)
}

// reconnect dials until a connection is established or the policy gives up.
// Returns false on give-up.
func (c *WSClient) reconnect() bool {
	for attempt := 0; ; attempt++ {
		delay, ok := c.policy.Next(attempt)
		if !ok {
			c.logger.Error("reconnect policy exhausted, staying offline",
				zap.Int("attempts", attempt))
			return false
		}
		time.Sleep(delay)

		if err := c.Connect(); err != nil {
			c.logger.Warn("retrying reconnect", zap.Int("attempt", attempt))
			continue
		}
		c.logger.Info("reconnected successfully")
		return true
	}
}

// heartbeatLoop sends the fixed keepalive payload at the configured interval.
// A tick that finds the channel not Open is skipped, not queued.
func (c *WSClient) heartbeatLoop() {
	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn, state := c.conn, c.state
		c.mu.Unlock()
		if state != StateOpen || conn == nil {
			continue
		}

		c.writeMu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, []byte(HeartbeatPing))
		c.writeMu.Unlock()
		if err != nil {
			// The read loop notices the broken connection; nothing to do here.
			c.logger.Debug("heartbeat send failed", zap.Error(err))
		}
	}
}
