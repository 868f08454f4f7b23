package dsmr

import (
	"testing"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	require.Equal(t, "01", DecodeString("3031"))
	require.Equal(t, "303", DecodeString("303"))
	require.Equal(t, "ZZ", DecodeString("ZZ"))
	require.Equal(t, "", DecodeString(""))
}

func TestDecodeDecimalUnit(t *testing.T) {
	d := obis.EnergyDeliveredTariff1

	require.Equal(t, &UnitValue[float64]{Value: 1.234, Unit: obis.UnitKWh}, DecodeDecimalUnit(d, "000001.234*kWh"))
	require.Equal(t, &UnitValue[float64]{Value: 12, Unit: obis.UnitKWh}, DecodeDecimalUnit(d, "12*kWh"))

	for _, raw := range []string{"1.234*kW", "1.234", "1.2.3*kWh", "-1*kWh", "1e3*kWh", " 1*kWh", "*kWh", "1.234*kwh"} {
		require.Nil(t, DecodeDecimalUnit(d, raw), raw)
	}
}

func TestDecodeAppliesFactor(t *testing.T) {
	d := obis.Descriptor{ID: obis.MustParse("1-0:1.8.1"), Unit: obis.UnitWh, Factor: 1000}

	require.Equal(t, &UnitValue[float64]{Value: 1500, Unit: obis.UnitWh}, DecodeDecimalUnit(d, "1.5*Wh"))
	require.Equal(t, &UnitValue[int]{Value: 2000, Unit: obis.UnitWh}, DecodeIntUnit(d, "2*Wh"))
	require.Equal(t, 3000, *DecodeInt(d, "3"))
}

func TestDecodeIntegers(t *testing.T) {
	require.Equal(t, 3, *DecodeInt(obis.GasDeviceType, "003"))
	require.Equal(t, -4, *DecodeInt(obis.GasDeviceType, "-4"))
	require.Nil(t, DecodeInt(obis.GasDeviceType, "3.0"))
	require.Nil(t, DecodeInt(obis.GasDeviceType, ""))

	require.Equal(t, &UnitValue[int64]{Value: 240, Unit: obis.UnitS}, DecodeInt64Unit(obis.ElectricityFailureLog, "0000000240*s"))
	require.Nil(t, DecodeInt64Unit(obis.ElectricityFailureLog, "0000000240*A"))
}

func TestDecodeTimestamp(t *testing.T) {
	loc := amsterdam(t)

	winter := DecodeTimestamp("101209113020W", loc)
	require.NotNil(t, winter)
	requireTime(t, time.Date(2010, 12, 9, 11, 30, 20, 0, loc), winter)
	_, offset := winter.Zone()
	require.Equal(t, 3600, offset)

	summer := DecodeTimestamp("200512134558S", loc)
	_, offset = summer.Zone()
	require.Equal(t, 7200, offset)

	require.Equal(t, *DecodeTimestamp("101209113020", loc), *winter)
	require.Equal(t, *DecodeTimestamp("101209113020WS", loc), *winter)
	require.Nil(t, DecodeTimestamp("1012091130", loc))
	require.Nil(t, DecodeTimestamp("101309113020W", loc))
	require.Nil(t, DecodeTimestamp("", loc))
}

func TestTimeStampedValuesSkip(t *testing.T) {
	tg := NewTelegram("Foo", []Field{
		{ID: obis.GasDelivered.ID, Values: []string{"101209112500W", "1*m3", "101209122500W", "2*m3"}},
	}, time.UTC)

	var values []float64
	for v := range TimeStampedValues(tg, obis.GasDelivered, 2, DecodeDecimalUnit) {
		values = append(values, v.Value.Value)
	}
	require.Equal(t, []float64{2}, values)

	count := 0
	for range TimeStampedValues(tg, obis.GasDelivered, 10, DecodeDecimalUnit) {
		count++
	}
	require.Zero(t, count)

	negative := TimeStampedValues(tg, obis.GasDelivered, -1, DecodeDecimalUnit)
	for range 2 {
		values = values[:0]
		for v := range negative {
			values = append(values, v.Value.Value)
		}
		require.Equal(t, []float64{1, 2}, values)
	}
}
