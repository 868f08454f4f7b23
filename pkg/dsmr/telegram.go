package dsmr

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/crc"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
)

// Field is one data line of a telegram: an id and the values between its parentheses.
type Field struct {
	ID     obis.ID
	Values []string
}

// Telegram is a decoded DSMR telegram. It never changes after construction;
// the typed accessors decode from the raw values on every call.
type Telegram struct {
	identification string
	values         map[obis.ID][]string
	order          []obis.ID
	location       *time.Location
}

// NewTelegram builds a telegram from its fields. A repeated id replaces the earlier values.
// A nil location means UTC.
func NewTelegram(identification string, fields []Field, location *time.Location) *Telegram {
	if location == nil {
		location = time.UTC
	}
	t := &Telegram{
		identification: identification,
		values:         make(map[obis.ID][]string, len(fields)),
		order:          make([]obis.ID, 0, len(fields)),
		location:       location,
	}
	for _, f := range fields {
		if _, exists := t.values[f.ID]; !exists {
			t.order = append(t.order, f.ID)
		}
		t.values[f.ID] = slices.Clone(f.Values)
	}
	return t
}

// Identification is the first line of the telegram without the leading '/'.
func (t *Telegram) Identification() string {
	return t.identification
}

// Location is the time zone timestamps are decoded in.
func (t *Telegram) Location() *time.Location {
	return t.location
}

// Len returns the number of distinct ids in the telegram.
func (t *Telegram) Len() int {
	return len(t.values)
}

// IDs returns the ids in the order they first appeared.
func (t *Telegram) IDs() []obis.ID {
	return slices.Clone(t.order)
}

// Values returns a copy of the raw id to values map.
func (t *Telegram) Values() map[obis.ID][]string {
	values := maps.Clone(t.values)
	for id, v := range values {
		values[id] = slices.Clone(v)
	}
	return values
}

// Raw returns the first raw value of the descriptor's id.
func (t *Telegram) Raw(d obis.Descriptor) (string, bool) {
	return t.RawByID(d.ID)
}

// RawMulti returns all raw values of the descriptor's id, or nil when absent.
func (t *Telegram) RawMulti(d obis.Descriptor) []string {
	return slices.Clone(t.values[d.ID])
}

// RawByID returns the first raw value stored under id.
func (t *Telegram) RawByID(id obis.ID) (string, bool) {
	values := t.values[id]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Get returns the first raw value of an id written in text form, like "1-0:1.8.1".
func (t *Telegram) Get(id string) (string, bool) {
	parsed, err := obis.Parse(id)
	if err != nil {
		return "", false
	}
	return t.RawByID(parsed)
}

// DecimalUnit decodes the descriptor's value as a number with a unit.
func (t *Telegram) DecimalUnit(d obis.Descriptor) *UnitValue[float64] {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	return DecodeDecimalUnit(d, raw)
}

// IntUnit decodes the descriptor's value as an integer with a unit.
func (t *Telegram) IntUnit(d obis.Descriptor) *UnitValue[int] {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	return DecodeIntUnit(d, raw)
}

// Int64Unit decodes the descriptor's value as a 64-bit integer with a unit.
func (t *Telegram) Int64Unit(d obis.Descriptor) *UnitValue[int64] {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	return DecodeInt64Unit(d, raw)
}

// Int decodes the descriptor's value as a unitless integer.
func (t *Telegram) Int(d obis.Descriptor) *int {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	return DecodeInt(d, raw)
}

// Timestamp decodes the descriptor's value as a point in time.
func (t *Telegram) Timestamp(d obis.Descriptor) *time.Time {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	return DecodeTimestamp(raw, t.location)
}

// Text decodes the descriptor's hex encoded value.
func (t *Telegram) Text(d obis.Descriptor) *string {
	raw, ok := t.Raw(d)
	if !ok {
		return nil
	}
	s := DecodeString(raw)
	return &s
}

// AsString writes the telegram back in wire format, closed by the checksum of calc.
// A nil calc uses the CRC16 of DSMR meters.
func (t *Telegram) AsString(calc crc.Calculator) string {
	if calc == nil {
		calc = crc.Default()
	}

	lines := make([]string, 0, len(t.order))
	for _, id := range t.order {
		lines = append(lines, id.String()+"("+strings.Join(t.values[id], ")(")+")")
	}

	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(t.identification)
	sb.WriteString("\r\n\r\n")
	sb.WriteString(strings.Join(lines, "\r\n"))
	sb.WriteString("\r\n!")
	sum := calc.Checksum([]byte(sb.String()))
	sb.WriteString(crc.Format(sum))
	sb.WriteString("\r\n")
	return sb.String()
}

func (t *Telegram) String() string {
	return t.AsString(nil)
}
