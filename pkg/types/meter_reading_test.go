package types

import (
	"strings"
	"testing"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/stretchr/testify/require"
)

var fluviusTelegram = strings.Join([]string{
	`/FLU5\253769484_A`,
	``,
	`0-0:96.1.4(50217)`,
	`0-0:96.1.1(3153414131313131313131313131)`,
	`0-0:1.0.0(200512135409S)`,
	`1-0:1.8.1(000000.034*kWh)`,
	`1-0:1.8.2(000015.758*kWh)`,
	`1-0:2.8.1(000000.000*kWh)`,
	`1-0:2.8.2(000000.011*kWh)`,
	`1-0:1.4.0(02.351*kW)`,
	`1-0:1.6.0(200509134558S)(02.589*kW)`,
	`0-0:96.14.0(0001)`,
	`1-0:1.7.0(00.500*kW)`,
	`1-0:2.7.0(01.250*kW)`,
	`1-0:32.7.0(234.7*V)`,
	`1-0:31.7.0(002*A)`,
	`0-0:96.3.10(1)`,
	`0-1:24.1.0(003)`,
	`0-1:96.1.1(37464C4F32313139303333373333)`,
	`0-1:24.4.0(1)`,
	`0-1:24.2.3(200512134558S)(00112.384*m3)`,
	`!`,
}, "\r\n")

func parse(t *testing.T, raw string) *dsmr.Telegram {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Brussels")
	require.NoError(t, err)
	tg, err := dsmr.NewParser(dsmr.WithLocation(loc)).ParseString(raw)
	require.NoError(t, err)
	return tg
}

func TestMeterReadingFromTelegram(t *testing.T) {
	received := time.Date(2020, 5, 12, 12, 0, 0, 0, time.UTC)
	reading := MeterReadingFromTelegram(parse(t, fluviusTelegram), received)

	require.Equal(t, "2020-05-12T13:54:09+02:00", reading.Timestamp)
	require.Equal(t, `FLU5\253769484_A`, reading.Identification)
	require.Equal(t, 50217, reading.DSMRVersion)
	require.Equal(t, 0.5, reading.CurrentConsumptionKW)
	require.Equal(t, 1.25, reading.CurrentProductionKW)
	require.Equal(t, int32(-750), reading.NetPowerW)
	require.Equal(t, 15.758, reading.TotalConsumptionNightKWH)
	require.Equal(t, 0.011, reading.TotalProductionNightKWH)
	require.Equal(t, 2.351, reading.AverageDemandKW)
	require.Equal(t, 2.589, reading.MonthPeakDemandKW)
	require.Equal(t, "2020-05-09T13:45:58+02:00", reading.MonthPeakDemandTime)
	require.Equal(t, 1, reading.CurrentTariff)
	require.Equal(t, 234.7, reading.L1VoltageV)
	require.Equal(t, 2.0, reading.L1CurrentA)
	require.Equal(t, 1, reading.SwitchElectricity)
	require.Equal(t, 1, reading.SwitchGas)
	require.Equal(t, "1SAA1111111111", reading.MeterSerialElectricity)
	require.Equal(t, "7FLO2119033733", reading.MeterSerialGas)
	require.Equal(t, 112.384, reading.GasConsumptionM3)
	require.Equal(t, "2020-05-12T13:45:58+02:00", reading.GasTimestamp)
}

func TestMeterReadingFromMinimalTelegram(t *testing.T) {
	received := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	reading := MeterReadingFromTelegram(parse(t, "/Foo"), received)

	require.Equal(t, "2024-01-02T03:04:05Z", reading.Timestamp)
	require.Equal(t, "Foo", reading.Identification)
	require.Zero(t, reading.GasConsumptionM3)
	require.Empty(t, reading.GasTimestamp)
	require.Empty(t, reading.MonthPeakDemandTime)
}

func TestMeterReadingJson(t *testing.T) {
	reading := MeterReadingFromTelegram(parse(t, fluviusTelegram), time.Now())

	b := reading.ToJsonBytes()
	require.Contains(t, string(b), `"gas_consumption_m3":112.384`)
	require.Equal(t, reading, MeterReadingFromJsonBytes(b))

	require.Nil(t, MeterReadingFromJsonBytes([]byte("not json")))
}
