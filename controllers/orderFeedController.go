package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed pushes newly placed orders and status changes to connected
// websocket clients (kitchen displays, admin dashboards).
type OrderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{clients: make(map[*websocket.Conn]bool)}
}

// Handler upgrades the connection and keeps it registered until the client
// goes away. Clients only listen; inbound messages are drained and ignored.
func (f *OrderFeed) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends v to every connected client. Safe on a nil feed so callers
// need no wiring in tests.
func (f *OrderFeed) Broadcast(v interface{}) {
	if f == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("order feed: marshal failed: %v", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}
