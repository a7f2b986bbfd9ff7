// Package present holds the Presenters that the training engine hands its snapshots to
package present

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"

	"github.com/sharnoff/multinet/engine"
)

// FramesPath is the websocket endpoint served by a Hub
const FramesPath string = "/ws/frames"

// Hub is a Presenter that broadcasts every Frame to the websocket clients connected to it.
// Clients get protobuf JSON text messages, or protobuf binary messages if they connect with the
// query "?format=binary".
type Hub struct {
	app *fiber.App

	mu      sync.Mutex
	clients map[*websocket.Conn]bool // value is whether the client wants binary
}

// NewHub returns a Hub with its routes set up. 'extra' may add routes to the same app, such as a
// control API.
func NewHub(extra ...func(*fiber.App)) *Hub {
	h := &Hub{
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		clients: make(map[*websocket.Conn]bool),
	}

	h.app.Use(FramesPath, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("binary", c.Query("format") == "binary")
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	h.app.Get(FramesPath, websocket.New(h.serve))

	for _, f := range extra {
		f(h.app)
	}

	return h
}

// App returns the underlying Fiber app
func (h *Hub) App() *fiber.App {
	return h.app
}

// Listen serves the Hub on the given address until Shutdown is called
func (h *Hub) Listen(addr string) error {
	log.Infof("Serving frames on %s%s", addr, FramesPath)
	return h.app.Listen(addr)
}

// Shutdown stops the server and disconnects every client
func (h *Hub) Shutdown() error {
	return h.app.Shutdown()
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) serve(c *websocket.Conn) {
	binary, _ := c.Locals("binary").(bool)

	h.mu.Lock()
	h.clients[c] = binary
	h.mu.Unlock()
	log.Infof("Client %s connected", c.RemoteAddr())

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
		log.Infof("Client %s disconnected", c.RemoteAddr())
	}()

	// clients don't send anything; reading only notices when they leave
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Present encodes the Frame at most once per format and writes it to every client. Clients that
// can't be written to are dropped.
func (h *Hub) Present(f *engine.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 || f.Empty() {
		return
	}

	var encoded [2][]byte
	for c, binary := range h.clients {
		kind, msgType := 0, websocket.TextMessage
		if binary {
			kind, msgType = 1, websocket.BinaryMessage
		}

		if encoded[kind] == nil {
			data, err := MarshalFrame(f, binary)
			if err != nil {
				log.Errorf("Failed to encode frame: %v", err)
				return
			}
			encoded[kind] = data
		}

		if err := c.WriteMessage(msgType, encoded[kind]); err != nil {
			log.Warnf("Dropping client %s: %v", c.RemoteAddr(), err)
			c.Close()
			delete(h.clients, c)
		}
	}
}
