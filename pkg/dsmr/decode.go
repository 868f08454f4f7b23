package dsmr

import (
	"encoding/hex"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
)

// Layout of telegram timestamps, without the trailing W/S daylight saving marker.
const timestampLayout = "060102150405"

// splitUnit splits "001.234*kWh" on the last '*'.
func splitUnit(raw string) (value, unit string) {
	if i := strings.LastIndexByte(raw, '*'); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}

func isCorrectUnit(expected obis.Unit, actual string) bool {
	u, ok := obis.ParseUnit(actual)
	return ok && u == expected
}

// parseDecimal accepts digits with at most one decimal point. No sign, exponent or spaces.
func parseDecimal(s string) (float64, bool) {
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			points++
		default:
			return 0, false
		}
	}
	if digits == 0 || points > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInteger accepts an optional sign and surrounding spaces.
func parseInteger(s string, bitSize int) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

func scale(v int64, factor float64) int64 {
	if factor == 1 {
		return v
	}
	return int64(float64(v) * factor)
}

// DecodeDecimalUnit decodes "value*unit". The unit must match the descriptor.
func DecodeDecimalUnit(d obis.Descriptor, raw string) *UnitValue[float64] {
	value, unit := splitUnit(raw)
	parsed, ok := parseDecimal(value)
	if !ok || !isCorrectUnit(d.Unit, unit) {
		return nil
	}
	return &UnitValue[float64]{Value: parsed * d.Scale(), Unit: d.Unit}
}

// DecodeIntUnit is DecodeDecimalUnit for integer values.
func DecodeIntUnit(d obis.Descriptor, raw string) *UnitValue[int] {
	value, unit := splitUnit(raw)
	parsed, ok := parseInteger(value, strconv.IntSize)
	if !ok || !isCorrectUnit(d.Unit, unit) {
		return nil
	}
	return &UnitValue[int]{Value: int(scale(parsed, d.Scale())), Unit: d.Unit}
}

// DecodeInt64Unit is DecodeDecimalUnit for 64-bit integer values.
func DecodeInt64Unit(d obis.Descriptor, raw string) *UnitValue[int64] {
	value, unit := splitUnit(raw)
	parsed, ok := parseInteger(value, 64)
	if !ok || !isCorrectUnit(d.Unit, unit) {
		return nil
	}
	return &UnitValue[int64]{Value: scale(parsed, d.Scale()), Unit: d.Unit}
}

// DecodeInt decodes a unitless integer.
func DecodeInt(d obis.Descriptor, raw string) *int {
	parsed, ok := parseInteger(raw, strconv.IntSize)
	if !ok {
		return nil
	}
	v := int(scale(parsed, d.Scale()))
	return &v
}

// DecodeTimestamp reads YYMMDDhhmmss[W|S] as local time in loc.
// Any trailing W/S markers are dropped; loc decides the UTC offset.
func DecodeTimestamp(raw string, loc *time.Location) *time.Time {
	ts, err := time.ParseInLocation(timestampLayout, strings.TrimRight(raw, "WS"), loc)
	if err != nil {
		return nil
	}
	return &ts
}

// DecodeString decodes hex encoded ASCII. Anything that is not valid hex is returned as is.
func DecodeString(raw string) string {
	if len(raw)%2 != 0 {
		return raw
	}
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return raw
	}
	return string(decoded)
}

// TimeStampedValues decodes repeating (timestamp)(value) pairs after skipping the first skip tokens.
// An odd number of remaining tokens yields nothing. Every range over the result decodes again.
func TimeStampedValues[T any](t *Telegram, d obis.Descriptor, skip int, decode func(obis.Descriptor, string) *T) iter.Seq[TimeStampedValue[T]] {
	skip = max(skip, 0)
	return func(yield func(TimeStampedValue[T]) bool) {
		values := t.values[d.ID]
		if skip >= len(values) {
			return
		}
		values = values[skip:]
		if len(values)%2 != 0 {
			return
		}
		for i := 0; i < len(values); i += 2 {
			v := TimeStampedValue[T]{
				Timestamp: DecodeTimestamp(values[i], t.location),
				Value:     decode(d, values[i+1]),
			}
			if !yield(v) {
				return
			}
		}
	}
}
