package push

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	geojson "github.com/paulmach/go.geojson"

	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/settings"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const (
	KindTheme   = "theme"
	KindMarkers = "markers"

	sendBuffer   = 16
	writeTimeout = 10 * time.Second
)

// Message is what connected tabs receive.
type Message struct {
	Kind    string                     `json:"kind"`
	Theme   settings.Theme             `json:"theme,omitempty"`
	Markers *geojson.FeatureCollection `json:"markers,omitempty"`
}

type gauge interface {
	Set(float64)
}

func NewHub(clients gauge, log logger.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		gauge:   clients,
		log:     log.With("push_hub"),
	}
}

// Hub fans messages out to every connected tab. A tab that falls behind by
// more than sendBuffer messages is disconnected.
type Hub struct {
	upgrader websocket.Upgrader
	gauge    gauge
	log      logger.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade failed: %s", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	h.log.Debugf("client connected: %s", conn.RemoteAddr())

	go c.writeLoop()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.unregister(c)
			h.log.Debugf("client disconnected: %s", conn.RemoteAddr())
			return
		}
	}
}

func (h *Hub) Broadcast(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.WrapFail(err, "marshal push message")
	}

	h.mu.Lock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.log.Warnf("dropping slow client %s", c.conn.RemoteAddr())
		h.unregister(c)
	}
	return nil
}

// Publish pushes the markers of an applied tick.
func (h *Hub) Publish(_ context.Context, snap live.Snapshot) error {
	return h.Broadcast(Message{
		Kind:    KindMarkers,
		Markers: live.FeatureCollection(snap.Markers),
	})
}

// FollowTheme pushes every theme change until ctx is done or changes is
// closed.
func (h *Hub) FollowTheme(ctx context.Context, changes <-chan settings.Theme) {
	for {
		select {
		case <-ctx.Done():
			return
		case theme, ok := <-changes:
			if !ok {
				return
			}
			err := h.Broadcast(Message{Kind: KindTheme, Theme: theme})
			if err != nil {
				h.log.Warn(err)
			}
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	h.gauge.Set(float64(len(h.clients)))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.gauge.Set(float64(len(h.clients)))
}

func (c *client) writeLoop() {
	defer c.conn.Close()

	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := c.conn.WriteMessage(websocket.TextMessage, payload)
		if err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}
