package interpreter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	maxRetries     = 10
	baseRetryDelay = 2 * time.Second
	maxRetryDelay  = 60 * time.Second

	// Meters send a telegram at least every 10 seconds.
	readTimeout  = 30 * time.Second
	pingInterval = 30 * time.Second
)

var ErrTooManyRetries = fmt.Errorf("giving up after %d connection attempts", maxRetries)

// ListenerURL is the websocket address of an interpreter API on host.
func ListenerURL(host string, tlsEnabled bool) url.URL {
	scheme := "ws"
	if tlsEnabled {
		scheme = "wss"
	}
	return url.URL{Scheme: scheme, Host: host, Path: "/ws"}
}

// Manage websocket connection and call funcToCall for each reading.
// Returns nil when ctx is cancelled, or the collected dial errors once retries run out.
func StartListener(ctx context.Context, u url.URL, funcToCall func(reading *types.MeterReading)) error {
	retryCount := 0
	var dialErrors []error

	for {
		if retryCount > 0 {
			delay := retryDelay(retryCount)
			logrus.WithField("attempt", fmt.Sprintf("%d/%d", retryCount+1, maxRetries)).
				Infof("Retrying connection in %v", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				logrus.Info("Shutdown requested during retry wait")
				return nil
			}
		}

		logrus.WithField("url", u.String()).Info("Connecting to interpreter API")

		dialer := *websocket.DefaultDialer
		dialer.HandshakeTimeout = 10 * time.Second
		c, _, err := dialer.DialContext(ctx, u.String(), nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logrus.WithError(err).Warn("Connection failed")
			dialErrors = append(dialErrors, err)
			retryCount++
			if retryCount >= maxRetries {
				return errors.Join(append([]error{ErrTooManyRetries}, dialErrors...)...)
			}
			continue
		}

		logrus.Info("Connected! Accepting meter readings.")
		retryCount = 0
		dialErrors = nil

		connectionBroken := handleConnection(ctx, c, funcToCall)
		c.Close()

		if !connectionBroken {
			return nil
		}
		logrus.Warn("Connection lost, will retry...")
		retryCount = 1
	}
}

// Exponential backoff, capped at maxRetryDelay.
func retryDelay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	if retryCount > 16 {
		return maxRetryDelay
	}
	return min(baseRetryDelay<<(retryCount-1), maxRetryDelay)
}

func handleConnection(
	ctx context.Context,
	c *websocket.Conn,
	funcToCall func(reading *types.MeterReading),
) bool {
	done := make(chan struct{})

	c.SetReadDeadline(time.Now().Add(readTimeout))
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go func() {
		defer close(done)
		for {
			messageType, message, err := c.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logrus.WithError(err).Warn("WebSocket error")
				} else {
					logrus.WithError(err).Info("Connection closed")
				}
				return
			}

			c.SetReadDeadline(time.Now().Add(readTimeout))

			if messageType != websocket.TextMessage {
				logrus.WithField("type", messageType).Warn("Received unexpected message type")
				continue
			}
			if reading := types.MeterReadingFromJsonBytes(message); reading != nil {
				funcToCall(reading)
			} else {
				logrus.WithField("message", string(message)).Warn("Failed to parse meter reading")
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return true
		case <-ticker.C:
			if err := c.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				logrus.WithError(err).Warn("Failed to send ping")
			}
		case <-ctx.Done():
			logrus.Info("Shutdown requested, closing connection...")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				logrus.WithError(err).Warn("Error sending close message")
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return false
		}
	}
}
