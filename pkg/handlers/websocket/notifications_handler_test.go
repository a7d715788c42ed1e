package websocket

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/common"
	infraWebsocket "github.com/NeuralTrust/ClickGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	gorilla "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs a fiber app on a loopback port with locals preset the way
// the websocket middleware sets them.
func startServer(t *testing.T, hub *infraWebsocket.Hub, sem *infraWebsocket.Semaphore, account, identity string) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := NewNotificationsHandler(logrus.New(), hub, 50*time.Millisecond, 200*time.Millisecond)
	app.Get("/ws", func(c *fiber.Ctx) error {
		if !sem.Acquire() {
			return fiber.ErrTooManyRequests
		}
		c.Locals(string(common.SemaphoreContextKey), sem)
		c.Locals(string(common.AccountContextKey), account)
		c.Locals(string(common.IdentityContextKey), identity)
		return c.Next()
	}, websocket.New(h.Handle))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "ws://" + ln.Addr().String() + "/ws"
}

func readEnvelope(t *testing.T, conn *gorilla.Conn) infraWebsocket.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var env infraWebsocket.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestNotifications_DeliversGroupFrames(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 8)
	sem := infraWebsocket.NewSemaphore(2)
	url := startServer(t, hub, sem, "acc-1", "user-1")

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	hello := readEnvelope(t, conn)
	assert.Equal(t, EventConnected, hello.Type)
	assert.Equal(t, "acc-1", hello.Data["account"])
	assert.Equal(t, 1, sem.InUse())

	frame, err := infraWebsocket.Envelope{
		Type:      "fraud_detected",
		Timestamp: time.Now().UTC(),
		Data:      map[string]interface{}{"ip": "198.51.100.4"},
	}.Marshal()
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return hub.ToGroup("acc-1", frame) == 1 }, time.Second, 10*time.Millisecond)
	env := readEnvelope(t, conn)
	assert.Equal(t, "fraud_detected", env.Type)
	assert.Equal(t, "198.51.100.4", env.Data["ip"])

	assert.Equal(t, 0, hub.ToGroup("acc-2", frame))
}

func TestNotifications_ReleasesOnDisconnect(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 8)
	sem := infraWebsocket.NewSemaphore(1)
	url := startServer(t, hub, sem, "acc-1", "")

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	readEnvelope(t, conn)

	_, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	require.Error(t, err, "second connection exceeds the semaphore")
	if resp != nil {
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	}

	require.NoError(t, conn.WriteMessage(gorilla.CloseMessage,
		gorilla.FormatCloseMessage(gorilla.CloseNormalClosure, "bye")))
	conn.Close()

	assert.Eventually(t, func() bool { return sem.InUse() == 0 && hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestNotifications_AnswersPings(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 8)
	sem := infraWebsocket.NewSemaphore(1)
	url := startServer(t, hub, sem, "acc-1", "")

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(data string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return conn.WriteControl(gorilla.PongMessage, []byte(data), time.Now().Add(time.Second))
	})

	readEnvelope(t, conn)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("no ping received")
	}
}

func TestNotifications_RejectsMissingScope(t *testing.T) {
	hub := infraWebsocket.NewHub(logrus.New(), 8)
	sem := infraWebsocket.NewSemaphore(1)
	url := startServer(t, hub, sem, "", "")

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, gorilla.IsCloseError(err, gorilla.ClosePolicyViolation))
	assert.Eventually(t, func() bool { return sem.InUse() == 0 }, time.Second, 10*time.Millisecond)
}
