// Package realtime is the in-process broadcaster pushing dashboard events to
// connected websocket clients. Delivery is at-most-once: no persistence, no
// replay, and a slow client drops messages instead of stalling a publish.
package realtime

import (
	"encoding/json"
	"sync"

	zlog "github.com/rs/zerolog/log"
)

// Event is the wire shape of every hub message.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Client struct {
	ID   string
	Send chan []byte
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

// Broadcast fans an event out to every connected client. Best effort: a
// marshal failure or a full client buffer never propagates to the caller.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		zlog.Error().Err(err).Str("event", event).Msg("marshal broadcast")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			zlog.Warn().Str("client", client.ID).Str("event", event).Msg("drop message")
		}
	}
}

// SendTo delivers a one-off event to a single client, used for the
// connect-time catch-up message.
func (h *Hub) SendTo(client *Client, event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		zlog.Error().Err(err).Str("event", event).Msg("marshal catch-up")
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
