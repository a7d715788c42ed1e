package websocket

import (
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/common"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPingPeriod = 30 * time.Second
	DefaultPongWait   = 45 * time.Second
	writeWait         = 10 * time.Second

	EventConnected = "connected"
)

type notificationsHandler struct {
	logger     *logrus.Logger
	hub        *infraWebsocket.Hub
	pingPeriod time.Duration
	pongWait   time.Duration
}

func NewNotificationsHandler(
	logger *logrus.Logger,
	hub *infraWebsocket.Hub,
	pingPeriod time.Duration,
	pongWait time.Duration,
) Handler {
	if pingPeriod <= 0 {
		pingPeriod = DefaultPingPeriod
	}
	if pongWait <= pingPeriod {
		pongWait = pingPeriod + pingPeriod/2
	}
	return &notificationsHandler{
		logger:     logger,
		hub:        hub,
		pingPeriod: pingPeriod,
		pongWait:   pongWait,
	}
}

// Handle streams hub frames for the token's account and identity until the
// client goes away or the subscription is closed. All writes happen on this
// goroutine; the reader goroutine only watches for close and pongs.
func (h *notificationsHandler) Handle(c *websocket.Conn) {
	if semaphore, ok := c.Locals(string(common.SemaphoreContextKey)).(*infraWebsocket.Semaphore); ok {
		defer semaphore.Release()
	}

	account, _ := c.Locals(string(common.AccountContextKey)).(string)
	identity, _ := c.Locals(string(common.IdentityContextKey)).(string)
	if account == "" && identity == "" {
		h.logger.Warn("websocket connection without account or identity")
		h.close(c, websocket.ClosePolicyViolation, "missing subscription scope")
		return
	}

	sub := h.hub.Subscribe(account, identity)
	defer h.hub.Unsubscribe(sub)

	prometheus.WebsocketConnections.Inc()
	defer prometheus.WebsocketConnections.Dec()

	fields := logrus.Fields{"account": account, "identity": identity, "subscriber": sub.ID}
	h.logger.WithFields(fields).Debug("websocket subscriber connected")

	if err := c.SetReadDeadline(time.Now().Add(h.pongWait)); err != nil {
		h.logger.WithError(err).Error("failed to set read deadline")
		return
	}
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.logger.WithError(err).WithFields(fields).Debug("websocket read failed")
				}
				return
			}
		}
	}()

	hello, err := infraWebsocket.Envelope{
		Type:      EventConnected,
		Timestamp: time.Now().UTC(),
		Data:      map[string]interface{}{"account": account, "identity": identity},
	}.Marshal()
	if err == nil {
		if err := h.write(c, websocket.TextMessage, hello); err != nil {
			h.logger.WithError(err).WithFields(fields).Debug("failed to send welcome frame")
			return
		}
	}

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.logger.WithFields(fields).Debug("websocket subscriber disconnected")
			return
		case frame, ok := <-sub.Messages():
			if !ok {
				h.close(c, websocket.CloseGoingAway, "subscription closed")
				return
			}
			if err := h.write(c, websocket.TextMessage, frame); err != nil {
				h.logger.WithError(err).WithFields(fields).Debug("failed to write frame")
				return
			}
		case <-ticker.C:
			if err := h.write(c, websocket.PingMessage, nil); err != nil {
				h.logger.WithError(err).WithFields(fields).Debug("failed to send ping")
				return
			}
		}
	}
}

func (h *notificationsHandler) write(c *websocket.Conn, messageType int, data []byte) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.WriteMessage(messageType, data)
}

func (h *notificationsHandler) close(c *websocket.Conn, code int, reason string) {
	_ = c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeWait),
	)
}
