// Package dsmr parses DSMR P1 telegrams into typed readings.
package dsmr

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // default meter time zone must resolve on hosts without a zoneinfo database

	"github.com/NotCoffee418/dsmr_parser/pkg/crc"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
	"golang.org/x/text/encoding"
)

var ErrInvalidFormat = errors.New("invalid telegram format")

const lineSeparator = "\r\n"

// Parser turns raw telegrams into Telegrams. It holds no state between calls
// and is safe for concurrent use.
type Parser struct {
	calc          crc.Calculator
	repairMangled bool
	location      *time.Location
	encoding      encoding.Encoding
}

// NewParser returns a parser that checks CRC16 checksums, decodes timestamps as
// Dutch local time and reads telegrams as ASCII.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		calc:     crc.Default(),
		location: defaultLocation(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes a telegram, verifying its checksum when it carries one.
func (p *Parser) Parse(raw []byte) (*Telegram, error) {
	return p.parse(raw, false)
}

// ParseUnchecked decodes a telegram without verifying its checksum.
func (p *Parser) ParseUnchecked(raw []byte) (*Telegram, error) {
	return p.parse(raw, true)
}

// ParseString is Parse for a telegram held in a string.
func (p *Parser) ParseString(raw string) (*Telegram, error) {
	return p.parse([]byte(raw), false)
}

// MustParse is Parse that panics on error.
func (p *Parser) MustParse(raw []byte) *Telegram {
	t, err := p.Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func (p *Parser) parse(raw []byte, ignoreChecksum bool) (*Telegram, error) {
	if len(raw) == 0 || raw[0] != '/' {
		return nil, fmt.Errorf("%w: telegram must start with '/'", ErrInvalidFormat)
	}

	text, err := p.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	lines := splitLines(text)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "/") {
		return nil, fmt.Errorf("%w: telegram must start with '/'", ErrInvalidFormat)
	}

	last := lines[len(lines)-1]
	if !ignoreChecksum && len(last) > 1 && last[0] == '!' {
		if err := crc.Verify(p.calc, raw); err != nil {
			return nil, err
		}
	}

	if p.repairMangled && hasContinuationLine(lines) {
		lines = repairMangled(lines)
	}

	fields := make([]Field, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if line[0] < '0' || line[0] > '9' {
			continue
		}
		field, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return NewTelegram(strings.TrimLeft(lines[0], "/"), fields, p.location), nil
}

func (p *Parser) decode(raw []byte) (string, error) {
	if p.encoding == nil {
		return string(raw), nil
	}
	decoded, err := p.encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// splitLines splits on CRLF and drops empty lines.
func splitLines(text string) []string {
	lines := strings.Split(text, lineSeparator)
	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

// parseLine splits "1-0:1.8.1(001.234*kWh)" into its id and values.
func parseLine(line string) (Field, error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return Field{}, fmt.Errorf("%w: %w: line '%s' has no values", obis.ErrInvalidID, ErrInvalidFormat, line)
	}

	id, err := obis.Parse(line[:open])
	if err != nil {
		return Field{}, fmt.Errorf("parse line '%s': %w", line, err)
	}

	values := strings.TrimRight(strings.TrimLeft(line[open:], "("), ")")
	return Field{ID: id, Values: strings.Split(values, ")(")}, nil
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return time.FixedZone("CET", 60*60)
	}
	return loc
}
