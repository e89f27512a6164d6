package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 10 * time.Second
	wsSendBuffer = 16
)

// WSClient is one open socket. Messages reach it through a buffered queue
// drained by its own writer goroutine, so a slow reader never blocks Publish.
type WSClient struct {
	Owner string
	Conn  *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

// RealtimeHub fans record events out to every open socket of the owner.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
	log     *zap.Logger
}

func NewRealtimeHub(log *zap.Logger) *RealtimeHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{}), log: log}
}

func (h *RealtimeHub) Register(c *WSClient) {
	c.send = make(chan []byte, wsSendBuffer)
	c.done = make(chan struct{})

	h.mu.Lock()
	if h.clients[c.Owner] == nil {
		h.clients[c.Owner] = make(map[*WSClient]struct{})
	}
	h.clients[c.Owner][c] = struct{}{}
	h.mu.Unlock()

	if c.Conn != nil {
		go h.writeLoop(c)
	}
}

// Unregister drops c and closes its socket. Safe to call more than once.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Owner]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Owner)
		}
	}
	h.mu.Unlock()

	c.once.Do(func() {
		if c.done != nil {
			close(c.done)
		}
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
	})
}

func (h *RealtimeHub) connected(owner string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[owner])
}

func (h *RealtimeHub) snapshot(owner string) []*WSClient {
	h.mu.RLock()
	defer h.mu.RUnlock()
	set := h.clients[owner]
	if len(set) == 0 {
		return nil
	}
	out := make([]*WSClient, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Publish queues ev for each of the owner's sockets without blocking. A
// socket whose queue is full is dropped.
func (h *RealtimeHub) Publish(owner string, ev Event) {
	targets := h.snapshot(owner)
	if len(targets) == 0 {
		return
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Warn("realtime: marshal event", zap.Error(err))
		return
	}

	for _, c := range targets {
		select {
		case c.send <- msg:
		case <-c.done:
		default:
			h.log.Debug("realtime: send queue full, dropping client", zap.String("owner", owner))
			h.Unregister(c)
		}
	}
}

// writeLoop is the only writer of data frames on c.Conn.
func (h *RealtimeHub) writeLoop(c *WSClient) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.log.Debug("realtime: write failed", zap.String("owner", c.Owner), zap.Error(err))
				h.Unregister(c)
				return
			}
		}
	}
}
