// Package spectate streams game snapshots to read-only websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gridsnake/internal/session"
)

const writeWait = 2 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type viewer struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte // latest frame only
}

// Hub fans snapshots out to viewers. Publish never blocks the caller; a
// viewer that falls behind only sees the newest frame.
type Hub struct {
	logger    *log.Logger
	snapshots chan session.Snapshot

	mu      sync.Mutex
	viewers map[uuid.UUID]*viewer
	last    []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:    logger,
		snapshots: make(chan session.Snapshot, 1),
		viewers:   make(map[uuid.UUID]*viewer),
	}
}

// Publish queues s for broadcast, replacing a snapshot not yet sent.
func (h *Hub) Publish(s session.Snapshot) {
	for {
		select {
		case h.snapshots <- s:
			return
		default:
		}
		select {
		case <-h.snapshots:
		default:
		}
	}
}

// Run broadcasts published snapshots until ctx is done, then disconnects
// every viewer.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-h.snapshots:
			msg, err := json.Marshal(FrameOf(s))
			if err != nil {
				h.logger.Printf("spectate: encode frame: %v", err)
				continue
			}
			h.broadcast(msg)
		}
	}
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for _, v := range h.viewers {
		offer(v.send, msg)
	}
}

func offer(ch chan []byte, msg []byte) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- msg:
	default:
	}
}

func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("spectate: upgrade: %v", err)
		return
	}

	v := &viewer{id: uuid.New(), conn: conn, send: make(chan []byte, 1)}
	h.mu.Lock()
	h.viewers[v.id] = v
	if h.last != nil {
		v.send <- h.last
	}
	h.mu.Unlock()
	h.logger.Printf("spectate: viewer %s joined from %s", v.id, conn.RemoteAddr())

	go h.write(v)

	// Viewers are read-only; reading only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(v)
}

func (h *Hub) write(v *viewer) {
	for msg := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Printf("spectate: viewer %s: %v", v.id, err)
			v.conn.Close()
			h.remove(v)
			return
		}
	}
	v.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	v.conn.Close()
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v.id]; !ok {
		return
	}
	delete(h.viewers, v.id)
	close(v.send)
	h.logger.Printf("spectate: viewer %s left", v.id)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, v := range h.viewers {
		delete(h.viewers, id)
		close(v.send)
	}
}

// Handler routes GET /ws to the hub.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

// ListenAndServe runs the hub and its HTTP listener until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	h.logger.Printf("spectate: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
