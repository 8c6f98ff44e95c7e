// Package spectate broadcasts each presented frame to read-only websocket viewers
package spectate

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/render"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Cell is the wire form of one draw command
type Cell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph,omitempty"`
	Text  string `json:"text,omitempty"`
	Fg    string `json:"fg"`
	Bg    string `json:"bg,omitempty"`
}

// Frame is one presented batch
type Frame struct {
	Seq    uint64            `json:"seq"`
	Layers map[string][]Cell `json:"layers"`
}

// viewer wraps one websocket with its outgoing queue
type viewer struct {
	ws   *websocket.Conn
	send chan []byte
}

// Hub fans frames out to viewers; implements render.Sink and http.Handler
type Hub struct {
	mu      sync.Mutex
	viewers map[*viewer]struct{}
	seq     uint64
	log     *logrus.Entry
}

// NewHub creates an empty hub
func NewHub(log *logrus.Entry) *Hub {
	return &Hub{viewers: make(map[*viewer]struct{}), log: log}
}

// ServeHTTP upgrades the request and registers a viewer
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.log != nil {
			h.log.WithError(err).Warn("spectator upgrade failed")
		}
		return
	}
	v := &viewer{ws: ws, send: make(chan []byte, 16)}

	h.mu.Lock()
	h.viewers[v] = struct{}{}
	h.mu.Unlock()
	if h.log != nil {
		h.log.WithField("remote", r.RemoteAddr).Info("spectator joined")
	}

	go h.writePump(v)
	h.readPump(v)
}

// readPump discards viewer messages; viewers never drive the simulation
func (h *Hub) readPump(v *viewer) {
	defer h.drop(v)
	for {
		if _, _, err := v.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) && h.log != nil {
				h.log.WithError(err).Debug("spectator read")
			}
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	defer v.ws.Close()
	for msg := range v.send {
		if err := v.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	v.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// drop unregisters v once; closing send stops its writer
func (h *Hub) drop(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Viewers returns the connected viewer count
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Present encodes the batch and queues it for every viewer
// A viewer whose queue is full is disconnected rather than stalling the tick
func (h *Hub) Present(b *render.Batch) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.viewers) == 0 {
		return nil
	}

	h.seq++
	msg, err := json.Marshal(Encode(h.seq, b))
	if err != nil {
		return err
	}
	for v := range h.viewers {
		select {
		case v.send <- msg:
		default:
			delete(h.viewers, v)
			close(v.send)
		}
	}
	return nil
}

// Close disconnects every viewer
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Encode converts a batch into its wire frame
func Encode(seq uint64, b *render.Batch) Frame {
	f := Frame{Seq: seq, Layers: make(map[string][]Cell, render.LayerCount)}
	for l := render.LayerMap; l < render.LayerCount; l++ {
		cmds := b.Layer(l)
		cells := make([]Cell, 0, len(cmds))
		for _, c := range cmds {
			cell := Cell{X: c.Pos.X, Y: c.Pos.Y, Fg: hex(c.Fg.R, c.Fg.G, c.Fg.B)}
			switch c.Kind {
			case render.CommandSet:
				cell.Glyph = string(c.Glyph)
				cell.Bg = hex(c.Bg.R, c.Bg.G, c.Bg.B)
			case render.CommandPrint:
				cell.Text = c.Text
			}
			cells = append(cells, cell)
		}
		f.Layers[l.String()] = cells
	}
	return f
}

func hex(r, g, b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}
