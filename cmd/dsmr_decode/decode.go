package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
	"github.com/NotCoffee418/dsmr_parser/pkg/port_reader"
	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/sirupsen/logrus"
)

const (
	formatJSON     = "json"
	formatText     = "text"
	formatTelegram = "telegram"
)

var ErrDecodeFailed = errors.New("one or more telegrams could not be decoded")

type decodeOptions struct {
	parser         *dsmr.Parser
	ignoreChecksum bool
	format         string
}

type decodedField struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Unit        string   `json:"unit,omitempty"`
	Values      []string `json:"values"`
}

type decodedTelegram struct {
	Identification string              `json:"identification"`
	Fields         []decodedField      `json:"fields"`
	Reading        *types.MeterReading `json:"reading"`
}

func describe(t *dsmr.Telegram) decodedTelegram {
	values := t.Values()
	out := decodedTelegram{
		Identification: t.Identification(),
		Fields:         make([]decodedField, 0, len(values)),
		Reading:        types.MeterReadingFromTelegram(t, time.Now()),
	}
	for _, id := range t.IDs() {
		d, _ := obis.Describe(id, obis.Known, obis.Belgian)
		field := decodedField{
			ID:          id.String(),
			Description: d.Description,
			Values:      values[id],
		}
		if d.Unit != obis.UnitNone {
			field.Unit = d.Unit.String()
		}
		out.Fields = append(out.Fields, field)
	}
	return out
}

// run decodes every telegram in r. Bad telegrams are logged and skipped;
// ErrDecodeFailed is returned at the end if there were any.
func run(w io.Writer, r io.Reader, opts decodeOptions) error {
	reader := bufio.NewReader(r)
	parse := opts.parser.Parse
	if opts.ignoreChecksum {
		parse = opts.parser.ParseUnchecked
	}

	failed, count := 0, 0
	for {
		raw, err := port_reader.ReadTelegram(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		count++

		telegram, err := parse(raw)
		if err != nil {
			failed++
			logrus.WithError(err).WithField("telegram", count).Error("Failed to decode telegram")
			continue
		}
		if err := write(w, telegram, opts.format); err != nil {
			return err
		}
	}

	if count == 0 {
		logrus.Warn("No telegram found in input")
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDecodeFailed, failed, count)
	}
	return nil
}

func write(w io.Writer, t *dsmr.Telegram, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(describe(t))
	case formatTelegram:
		_, err := io.WriteString(w, t.AsString(nil))
		return err
	case formatText:
		var sb strings.Builder
		sb.WriteString(t.Identification())
		sb.WriteString("\n")
		for _, field := range describe(t).Fields {
			fmt.Fprintf(&sb, "  %-14s %-40s %s\n", field.ID, field.Description, strings.Join(field.Values, " "))
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
