package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans journal events out to every open connection of a user.
// Register and Unregister are served by Run; PublishEvent may be called
// from any goroutine.
type Hub struct {
	mu    sync.RWMutex
	conns map[int64]map[*Client]struct{}

	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns:      make(map[int64]map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.Register:
			h.attach(c)
		case c := <-h.Unregister:
			h.detach(c)
		case <-h.done:
			h.detachAll()
			return
		}
	}
}

// Attach hands c to Run. It reports false once the hub is stopped, in which
// case the caller owns the connection and must close it.
func (h *Hub) Attach(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Stop ends Run and closes every client send channel.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) attach(c *Client) {
	h.mu.Lock()
	set := h.conns[c.UserID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.conns[c.UserID] = set
	}
	set[c] = struct{}{}
	n := len(set)
	h.mu.Unlock()

	log.Debug().Int64("user_id", c.UserID).Int("connections", n).Msg("websocket attached")
}

func (h *Hub) detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.conns[c.UserID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.conns, c.UserID)
	}
	log.Debug().Int64("user_id", c.UserID).Msg("websocket detached")
}

func (h *Hub) detachAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, set := range h.conns {
		for c := range set {
			close(c.send)
		}
		delete(h.conns, userID)
	}
}

// Connections reports how many sockets are open for userID.
func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// PublishEvent queues payload on every connection of userID. A connection
// whose buffer is full misses the event; it can catch up through the
// journal replay endpoint.
func (h *Hub) PublishEvent(userID int64, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.conns[userID] {
		select {
		case c.send <- payload:
		default:
			log.Warn().Int64("user_id", userID).Msg("websocket buffer full, event dropped")
		}
	}
}
