package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/yasiralifreelance/realtime-chat-app/internal/app"
	"github.com/yasiralifreelance/realtime-chat-app/internal/config"
	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// Controller bridges WebSocket connections to the presence coordinator:
// it upgrades requests, runs the per-connection pumps and routes
// inbound frames.
type Controller struct {
	Presence *app.Presence

	cfg      *config.Config
	limiter  *ClientRateLimiter
	validate *validator.Validate
}

func NewController(cfg *config.Config, presence *app.Presence) *Controller {
	return &Controller{
		Presence: presence,
		cfg:      cfg,
		limiter:  NewClientRateLimiter(cfg.RateLimitBurst, cfg.RateLimitInterval),
		validate: validator.New(),
	}
}

// wsConn is one client transport: the gorilla connection plus the
// buffered outbound queue the writePump drains. TrySend never blocks;
// the channel buffer is the only backpressure absorber.
type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and hands the connection to the
// presence coordinator as a fresh, unjoined session.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	token := c.GetString("client_token")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.cfg.ReadLimit)

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}

	sid := ctl.Presence.Connect(conn)
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("client", token).Msg("new WS connection")

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go func() {
		defer cancel()
		ctl.readPump(ctx, sid, token, conn)
	}()
}
