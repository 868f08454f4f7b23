package port_reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/metrics"
	"github.com/jacobsa/go-serial/serial"
	"github.com/sirupsen/logrus"
)

var ErrNotConnected = fmt.Errorf("serial port not connected")

// Initialize a new P1Reader client. A nil parser uses dsmr defaults.
func NewP1Reader(port string, baudrate uint, parser *dsmr.Parser, opts ...Option) *P1Reader {
	if parser == nil {
		parser = dsmr.NewParser()
	}
	reader := &P1Reader{
		port:      port,
		baudrate:  baudrate,
		open:      serial.Open,
		parser:    parser,
		maxErrors: 10,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Start listening for telegrams. Meters send one every second (DSMR 5) or ten seconds (older).
// Runs in goroutine. handleTelegram() also runs in goroutine.
func (p *P1Reader) StartReading(
	handleTelegram func(telegram *dsmr.Telegram),
	handleError func(error),
) {
	p.stopSignal.Store(false)

	go func() {
		// Tolerance before we report error.
		consecutiveErrors := 0
		var errs []error

		if err := p.connect(); err != nil {
			handleError(err)
			return
		}

		for consecutiveErrors < p.maxErrors {
			if p.stopSignal.Load() {
				logrus.Info("Stop signal received, disconnecting")
				p.disconnect()
				return
			}

			telegram, err := p.Next()
			if err != nil {
				if p.stopSignal.Load() {
					p.disconnect()
					return
				}
				consecutiveErrors++
				errs = append(errs, err)
				logrus.WithError(err).
					WithField("attempt", fmt.Sprintf("%d/%d", consecutiveErrors, p.maxErrors)).
					Warn("Error reading telegram")
				if errors.Is(err, metrics.ErrRead) {
					time.Sleep(time.Second)
				}
				continue
			}

			go handleTelegram(telegram)
			consecutiveErrors = 0
			errs = errs[:0]
		}

		logrus.WithField("errors", p.maxErrors).Error("Too many consecutive errors, stopping reader")
		handleError(errors.Join(errs...))
		p.disconnect()
	}()
}

func (p *P1Reader) StopReading() {
	p.stopSignal.Store(true)
	p.disconnect()
}

// GetLatestTelegram returns the last telegram that passed parsing, or nil.
func (p *P1Reader) GetLatestTelegram() *dsmr.Telegram {
	p.readingMutex.RLock()
	defer p.readingMutex.RUnlock()
	return p.latestTelegram
}

// Next reads and parses the next telegram from the open port.
func (p *P1Reader) Next() (*dsmr.Telegram, error) {
	start := time.Now()
	raw, err := p.readTelegram()
	if err != nil {
		err = fmt.Errorf("%w: %w", metrics.ErrRead, err)
		metrics.ObserveTelegram(err, time.Since(start))
		return nil, err
	}

	parse := p.parser.Parse
	if p.ignoreChecksum {
		parse = p.parser.ParseUnchecked
	}
	telegram, err := parse(raw)
	metrics.ObserveTelegram(err, time.Since(start))
	if err != nil {
		return nil, err
	}

	p.readingMutex.Lock()
	p.latestTelegram = telegram
	p.readingMutex.Unlock()
	return telegram, nil
}

// Open the connection to the P1 port.
func (p *P1Reader) connect() error {
	options := serial.OpenOptions{
		PortName:        p.port,
		BaudRate:        p.baudrate,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	}

	port, err := p.open(options)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	p.portMutex.Lock()
	p.serialPort = port
	p.reader = bufio.NewReader(port)
	p.portMutex.Unlock()
	logrus.WithField("port", p.port).Info("Connected to P1 port")
	return nil
}

func (p *P1Reader) disconnect() {
	p.portMutex.Lock()
	defer p.portMutex.Unlock()
	if p.serialPort != nil {
		p.serialPort.Close()
		p.serialPort = nil
		logrus.WithField("port", p.port).Info("Disconnected from P1 port")
	}
}

func (p *P1Reader) readTelegram() ([]byte, error) {
	p.portMutex.Lock()
	reader := p.reader
	connected := p.serialPort != nil
	p.portMutex.Unlock()
	if !connected || reader == nil {
		return nil, ErrNotConnected
	}
	return ReadTelegram(reader)
}

// ReadTelegram returns the bytes from the next line starting with '/' up to and
// including the line starting with '!'. Input before the first '/' is dropped.
// A telegram cut off by EOF is returned as is; the call after that reports io.EOF.
func ReadTelegram(reader *bufio.Reader) ([]byte, error) {
	var buffer bytes.Buffer
	inTelegram := false

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if line[0] == '/' {
				// Start of telegram
				buffer.Reset()
				inTelegram = true
			}
			if inTelegram {
				buffer.Write(line)
				if bytes.HasPrefix(bytes.TrimSpace(line), []byte("!")) {
					// End of telegram
					return buffer.Bytes(), nil
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) && inTelegram {
				return buffer.Bytes(), nil
			}
			return nil, err
		}
	}
}
