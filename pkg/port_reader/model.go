package port_reader

import (
	"bufio"
	"io"
	"sync"
	"sync/atomic"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/jacobsa/go-serial/serial"
)

// PortOpener opens the P1 port. serial.Open in production.
type PortOpener func(options serial.OpenOptions) (io.ReadWriteCloser, error)

type P1Reader struct {
	port     string
	baudrate uint
	open     PortOpener
	parser   *dsmr.Parser

	// Accept telegrams whose checksum does not match.
	ignoreChecksum bool
	maxErrors      int

	serialPort io.ReadWriteCloser
	reader     *bufio.Reader
	portMutex  sync.Mutex

	latestTelegram *dsmr.Telegram
	readingMutex   sync.RWMutex
	stopSignal     atomic.Bool
}

type Option func(*P1Reader)

func WithOpener(open PortOpener) Option {
	return func(p *P1Reader) {
		p.open = open
	}
}

func WithIgnoreChecksum(ignore bool) Option {
	return func(p *P1Reader) {
		p.ignoreChecksum = ignore
	}
}

// WithMaxErrors sets how many consecutive bad telegrams stop the reader.
func WithMaxErrors(n int) Option {
	return func(p *P1Reader) {
		if n > 0 {
			p.maxErrors = n
		}
	}
}
