package dsmr

import (
	"fmt"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
)

// UnitValue is a decoded number tagged with its unit.
type UnitValue[T any] struct {
	Value T
	Unit  obis.Unit
}

func (v UnitValue[T]) String() string {
	return fmt.Sprintf("%v%s", v.Value, v.Unit.Symbol())
}

// TimeStampedValue is a value together with the moment the meter recorded it.
// Either part is nil when it could not be decoded.
type TimeStampedValue[T any] struct {
	Timestamp *time.Time
	Value     *T
}

func (v TimeStampedValue[T]) String() string {
	ts := ""
	if v.Timestamp != nil {
		ts = v.Timestamp.Format(time.RFC3339)
	}
	value := ""
	if v.Value != nil {
		value = fmt.Sprint(*v.Value)
	}
	return ts + ": " + value
}
