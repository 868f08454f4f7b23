package dsmr

import (
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/crc"
	"golang.org/x/text/encoding"
)

// Option configures a Parser.
type Option func(*Parser)

// WithCalculator replaces the CRC16 checksum calculator.
func WithCalculator(calc crc.Calculator) Option {
	return func(p *Parser) {
		if calc != nil {
			p.calc = calc
		}
	}
}

// WithRepairMangled enables repairing the split gas reading of pre DSMR 4 meters.
func WithRepairMangled(enabled bool) Option {
	return func(p *Parser) {
		p.repairMangled = enabled
	}
}

// WithLocation sets the time zone telegram timestamps are read in.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithEncoding sets the character encoding of raw telegrams. Nil reads them as ASCII.
func WithEncoding(enc encoding.Encoding) Option {
	return func(p *Parser) {
		p.encoding = enc
	}
}
