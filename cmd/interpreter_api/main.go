// Interpreter API is responsible for reading the P1 port and broadcasting the readings.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/config"
	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/interpreter"
	"github.com/NotCoffee418/dsmr_parser/pkg/metrics"
	"github.com/NotCoffee418/dsmr_parser/pkg/port_reader"
	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	p1Reader *port_reader.P1Reader
	hub      = interpreter.NewHub()
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Readings are public on the local network
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadInterpreterAPIConfig(); err != nil {
		logrus.WithError(err).Fatal("Failed to load interpreter API config")
	}
	cfg := config.ActiveInterpreterAPIConfig

	parserOptions, err := cfg.ParserOptions()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid telegram settings")
	}

	metrics.Init()

	p1Reader = port_reader.NewP1Reader(
		cfg.SerialDevice,
		cfg.Baudrate,
		dsmr.NewParser(parserOptions...),
		port_reader.WithIgnoreChecksum(cfg.IgnoreChecksum),
	)

	p1Reader.StartReading(
		func(telegram *dsmr.Telegram) {
			hub.Broadcast(types.MeterReadingFromTelegram(telegram, time.Now()))
		},
		func(err error) {
			if err != nil {
				logrus.WithError(err).Fatal("Error reading P1 port")
			}
		},
	)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "European Smart Meter API",
			"status":  "running",
		})
	})

	http.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		reading := latestReading()
		if reading == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "No readings available yet",
			})
			return
		}
		writeJSON(w, http.StatusOK, reading)
	})

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Warn("WebSocket upgrade error")
			return
		}

		hub.Add(conn)

		// Send current reading immediately if available
		if reading := latestReading(); reading != nil {
			if err := hub.Send(conn, reading); err != nil {
				hub.Remove(conn)
				return
			}
		}

		// Keep connection alive
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Remove(conn)
				break
			}
		}
	})

	http.Handle("/metrics", promhttp.Handler())

	listener := fmt.Sprintf("%s:%d", cfg.ListenAddress, cfg.ListenPort)
	logrus.WithField("listen", listener).Info("Starting European Smart Meter Interpreter API")
	logrus.Fatal(http.ListenAndServe(listener, nil))
}

func latestReading() *types.MeterReading {
	telegram := p1Reader.GetLatestTelegram()
	if telegram == nil {
		return nil
	}
	return types.MeterReadingFromTelegram(telegram, time.Now())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("Failed to write response")
	}
}
