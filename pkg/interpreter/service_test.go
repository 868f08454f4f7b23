package interpreter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func serverURL(t *testing.T, server *httptest.Server) url.URL {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return ListenerURL(u.Host, false)
}

func TestListenerURL(t *testing.T) {
	plain := ListenerURL("meter.local:9039", false)
	require.Equal(t, "ws://meter.local:9039/ws", plain.String())
	secure := ListenerURL("meter.local:9039", true)
	require.Equal(t, "wss://meter.local:9039/ws", secure.String())
}

func TestRetryDelay(t *testing.T) {
	require.Equal(t, time.Duration(0), retryDelay(0))
	require.Equal(t, 2*time.Second, retryDelay(1))
	require.Equal(t, 4*time.Second, retryDelay(2))
	require.Equal(t, 32*time.Second, retryDelay(5))
	require.Equal(t, maxRetryDelay, retryDelay(6))
	require.Equal(t, maxRetryDelay, retryDelay(100))
}

func TestStartListenerReceivesReadings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage, []byte("not a reading"))
		reading := &types.MeterReading{Identification: "Foo", GasConsumptionM3: 12.5}
		conn.WriteMessage(websocket.TextMessage, reading.ToJsonBytes())
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var received []*types.MeterReading
	err := StartListener(ctx, serverURL(t, server), func(reading *types.MeterReading) {
		received = append(received, reading)
		cancel()
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "Foo", received[0].Identification)
	require.Equal(t, 12.5, received[0].GasConsumptionM3)
}

func TestStartListenerStopsWhileRetrying(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	u := serverURL(t, server)
	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := StartListener(ctx, u, func(*types.MeterReading) { t.Error("unexpected reading") })
	require.NoError(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Remove(conn)
				return
			}
		}
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	clients := make([]*websocket.Conn, 2)
	for i := range clients {
		c, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		defer c.Close()
		clients[i] = c
	}
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 5*time.Second, 10*time.Millisecond)

	hub.Broadcast(&types.MeterReading{Identification: "Foo"})
	for _, c := range clients {
		c.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, message, err := c.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, "Foo", types.MeterReadingFromJsonBytes(message).Identification)
	}

	clients[0].Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestHubSendFailsOnClosedConnection(t *testing.T) {
	hub := NewHub()
	accepted := make(chan *websocket.Conn, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		accepted <- conn
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer c.Close()

	var conn *websocket.Conn
	select {
	case conn = <-accepted:
	case <-time.After(5 * time.Second):
		t.Fatal("server never accepted the connection")
	}
	require.NoError(t, conn.NetConn().Close())

	require.Error(t, hub.Send(conn, &types.MeterReading{Identification: "Foo"}))
	hub.Remove(conn)
	require.Zero(t, hub.Count())
}
