// Package events pushes state-change notifications to connected views
// so they can re-render without polling.
package events

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event names the state that changed and the client it belongs to.
type Event struct {
	Scope    string `json:"scope"`
	ClientID string `json:"client_id"`
}

const (
	ScopeCart     = "cart"
	ScopeWishlist = "wishlist"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans events out to websocket subscribers. Publishing is
// best-effort: a subscriber with a full buffer misses the event rather
// than blocking the mutation that produced it.
type Hub struct {
	log *zap.Logger

	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:  log,
		subs: make(map[chan Event]struct{}),
	}
}

func (h *Hub) Publish(scope, clientID string) {
	ev := Event{Scope: scope, ClientID: clientID}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// slow subscriber, skip
		}
	}
}

func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err), zap.String("remote", r.RemoteAddr))
		return
	}
	defer conn.Close()

	h.log.Info("events subscriber connected", zap.String("remote", r.RemoteAddr))

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Warn("websocket read error", zap.Error(err), zap.String("remote", r.RemoteAddr))
				}
				return
			}
		}
	}()

	for {
		select {
		case ev := <-ch:
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Warn("websocket write error", zap.Error(err), zap.String("remote", r.RemoteAddr))
				return
			}
		case <-done:
			h.log.Info("events subscriber disconnected", zap.String("remote", r.RemoteAddr))
			return
		}
	}
}

func (h *Hub) subscribe() chan Event {
	ch := make(chan Event, 16)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[ch] = struct{}{}
	return ch
}

func (h *Hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, ch)
}
