// Package ws fans domain events out to connected HR dashboards.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"talent-match/internal/pkg/metrics"

	"go.uber.org/zap"
)

const (
	broadcastBuffer = 1024
	registerBuffer  = 128
)

// Event is the envelope written to every client.
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *zap.Logger
	metrics    *metrics.Manager
	now        func() time.Time
}

func NewHub(logger *zap.Logger, m *metrics.Manager) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client, registerBuffer),
		unregister: make(chan *Client, registerBuffer),
		done:       make(chan struct{}),
		logger:     logger.Named("ws"),
		metrics:    m,
		now:        time.Now,
	}
}

// Run serves register, unregister and broadcast requests until Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			h.metrics.SetWSClients(0)
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.metrics.SetWSClients(total)
			h.logger.Debug("client connected", zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.drop(client)
			h.logger.Debug("client disconnected", zap.Int("total_clients", h.ClientCount()))

		case message := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.logger.Warn("slow client dropped")
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.metrics.SetWSClients(total)
}

func (h *Hub) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast dropped", zap.String("reason", "buffer_full"))
	}
}

// Notify marshals an event envelope and broadcasts it.
func (h *Hub) Notify(event string, payload any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Event{Type: event, Data: payload, Timestamp: h.now().UTC().Format(time.RFC3339)})
	if err != nil {
		h.logger.Error("marshal event failed", zap.String("type", event), zap.Error(err))
		return
	}
	h.Broadcast(b)
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
