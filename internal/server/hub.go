package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	cws "github.com/coder/websocket"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/internal/engine"
	"github.com/pwrsched/pwrsched/pkg/logger"
	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

const writeTimeout = 5 * time.Second

// Hub fans data-changed notifications out to websocket subscribers. It
// implements the engine's Broadcaster contract, so every persisted
// change the engine makes reaches connected clients.
type Hub struct {
	log    logger.Logger
	mu     sync.Mutex
	conns  map[*cws.Conn]struct{}
	closed bool
}

// NewHub returns an empty hub.
func NewHub(l logger.Logger) *Hub {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Hub{
		log:   l,
		conns: make(map[*cws.Conn]struct{}),
	}
}

var _ engine.Broadcaster = (*Hub)(nil)

// ServeHTTP upgrades the request to a websocket and keeps the
// subscription open until the peer disconnects. The feed is
// notify-only; inbound messages are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		h.log.Warning("events: accept: %v", err)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close(cws.StatusGoingAway, "shutting down")
		return
	}
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close(cws.StatusNormalClosure, "")
	}()

	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast notifies all subscribers that the category's persisted
// items changed. Slow or broken peers are dropped.
func (h *Hub) Broadcast(cat pwrlib.Category) {
	data, err := json.Marshal(common.ChangeNotification{Category: cat.String()})
	if err != nil {
		return
	}

	h.mu.Lock()
	conns := make([]*cws.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := c.Write(ctx, cws.MessageText, data)
		cancel()
		if err != nil {
			h.mu.Lock()
			delete(h.conns, c)
			h.mu.Unlock()
			c.Close(cws.StatusAbnormalClosure, "write failed")
		}
	}
}

// Close drops all subscribers and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*cws.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.conns = make(map[*cws.Conn]struct{})
	h.mu.Unlock()

	for _, c := range conns {
		c.Close(cws.StatusGoingAway, "shutting down")
	}
}
