package interpreter

import (
	"sync"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/metrics"
	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

// Hub keeps the websocket clients that receive live readings.
type Hub struct {
	clients map[*websocket.Conn]*sync.Mutex
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	count := len(h.clients)
	h.mu.Unlock()
	metrics.SetWebsocketClients(count)
}

// Remove forgets conn and closes it.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()
	if ok {
		metrics.SetWebsocketClients(count)
	}
	conn.Close()
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send writes reading to one client. Writes to a connection are serialised.
func (h *Hub) Send(conn *websocket.Conn, reading *types.MeterReading) error {
	h.mu.RLock()
	lock, ok := h.clients[conn]
	h.mu.RUnlock()
	if !ok {
		return websocket.ErrCloseSent
	}

	lock.Lock()
	defer lock.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, reading.ToJsonBytes())
}

// Broadcast sends reading to every client and drops the ones that fail.
func (h *Hub) Broadcast(reading *types.MeterReading) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := h.Send(client, reading); err != nil {
			logrus.WithError(err).WithField("client", client.RemoteAddr().String()).Info("Dropping websocket client")
			h.Remove(client)
		}
	}
}
