package tracking

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"logistics-service/internal/events"
	"logistics-service/pkg/kafka"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// safeConn wraps a websocket.Conn with a write mutex.
// gorilla/websocket allows one concurrent writer; this enforces that.
type safeConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *safeConn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

func (c *safeConn) readMessage() (int, []byte, error) {
	return c.ws.ReadMessage()
}

func (c *safeConn) close() { c.ws.Close() }

// Hub manages WebSocket connections per shipment.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*safeConn
}

// NewHub creates a tracking hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*safeConn)}
}

// Routes returns a chi.Router for the /ws mount point.
func (h *Hub) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/shipments/{id}", h.HandleWS)
	return r
}

// HandleWS upgrades the connection and subscribes it to a shipment.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	shipmentID := chi.URLParam(r, "id")
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade error: %v", err)
		return
	}

	conn := &safeConn{ws: ws}

	h.mu.Lock()
	h.conns[shipmentID] = append(h.conns[shipmentID], conn)
	h.mu.Unlock()

	log.Printf("[ws] client connected to shipment %s", shipmentID)

	// Block until the client disconnects
	for {
		if _, _, err := conn.readMessage(); err != nil {
			break
		}
	}

	h.removeConn(shipmentID, conn)
	conn.close()
	log.Printf("[ws] client disconnected from shipment %s", shipmentID)
}

// BroadcastResult pushes an optimization result to all subscribers of a
// shipment. Safe for concurrent calls — each safeConn serialises its writes.
func (h *Hub) BroadcastResult(ev events.RouteOptimizedEvent) {
	h.mu.RLock()
	conns := h.conns[ev.ShipmentID]
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.writeJSON(ev); err != nil {
			log.Printf("[ws] write error: %v", err)
		}
	}
}

// StartRouteConsumer relays route.optimized events to websocket subscribers.
func (h *Hub) StartRouteConsumer(ctx context.Context, k *kafka.Client) {
	k.Subscribe(ctx, kafka.TopicRouteOptimized, "tracking-group", func(data []byte) error {
		var ev events.RouteOptimizedEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return err
		}
		h.BroadcastResult(ev)
		return nil
	})
}

func (h *Hub) removeConn(shipmentID string, conn *safeConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[shipmentID]
	for i, c := range conns {
		if c == conn {
			h.conns[shipmentID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[shipmentID]) == 0 {
		delete(h.conns, shipmentID)
	}
}
