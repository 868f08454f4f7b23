package types

import (
	"encoding/json"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/esmutils"
)

// MeterReading is the flat snapshot of a telegram broadcast to websocket clients.
// Fields the meter did not send are zero.
type MeterReading struct {
	Timestamp      string `json:"timestamp"`
	Identification string `json:"identification"`
	DSMRVersion    int    `json:"dsmr_version"`

	// Current consumption/production
	CurrentConsumptionKW float64 `json:"current_consumption_kw"`
	CurrentProductionKW  float64 `json:"current_production_kw"`
	NetPowerW            int32   `json:"net_power_w"`
	L1ConsumptionKW      float64 `json:"l1_consumption_kw"`
	L2ConsumptionKW      float64 `json:"l2_consumption_kw"`
	L3ConsumptionKW      float64 `json:"l3_consumption_kw"`
	L1ProductionKW       float64 `json:"l1_production_kw"`
	L2ProductionKW       float64 `json:"l2_production_kw"`
	L3ProductionKW       float64 `json:"l3_production_kw"`

	// Totals
	TotalConsumptionDayKWH   float64 `json:"total_consumption_day_kwh"`
	TotalConsumptionNightKWH float64 `json:"total_consumption_night_kwh"`
	TotalProductionDayKWH    float64 `json:"total_production_day_kwh"`
	TotalProductionNightKWH  float64 `json:"total_production_night_kwh"`

	// Belgian capacity tariff
	AverageDemandKW     float64 `json:"average_demand_kw"`
	MonthPeakDemandKW   float64 `json:"month_peak_demand_kw"`
	MonthPeakDemandTime string  `json:"month_peak_demand_time,omitempty"`

	// Electrical info
	CurrentTariff int     `json:"current_tariff"`
	L1VoltageV    float64 `json:"l1_voltage_v"`
	L2VoltageV    float64 `json:"l2_voltage_v"`
	L3VoltageV    float64 `json:"l3_voltage_v"`
	L1CurrentA    float64 `json:"l1_current_a"`
	L2CurrentA    float64 `json:"l2_current_a"`
	L3CurrentA    float64 `json:"l3_current_a"`

	// Power quality
	PowerFailures     int `json:"power_failures"`
	LongPowerFailures int `json:"long_power_failures"`

	// Switches/status
	SwitchElectricity int `json:"switch_electricity"`
	SwitchGas         int `json:"switch_gas"`

	// Serial numbers
	MeterSerialElectricity string `json:"meter_serial_electricity"`
	MeterSerialGas         string `json:"meter_serial_gas"`

	// Gas
	GasConsumptionM3 float64 `json:"gas_consumption_m3"`
	GasTimestamp     string  `json:"gas_timestamp,omitempty"`

	Message string `json:"message,omitempty"`
}

// MeterReadingFromTelegram flattens t. received is used when the telegram carries no timestamp.
func MeterReadingFromTelegram(t *dsmr.Telegram, received time.Time) *MeterReading {
	reading := &MeterReading{
		Timestamp:      received.Format(time.RFC3339),
		Identification: t.Identification(),
		DSMRVersion:    esmutils.IntOrZero(t.DSMRVersion()),

		CurrentConsumptionKW: esmutils.ToKW(t.PowerDelivered()),
		CurrentProductionKW:  esmutils.ToKW(t.PowerReturned()),
		L1ConsumptionKW:      esmutils.ToKW(t.PowerDeliveredL1()),
		L2ConsumptionKW:      esmutils.ToKW(t.PowerDeliveredL2()),
		L3ConsumptionKW:      esmutils.ToKW(t.PowerDeliveredL3()),
		L1ProductionKW:       esmutils.ToKW(t.PowerReturnedL1()),
		L2ProductionKW:       esmutils.ToKW(t.PowerReturnedL2()),
		L3ProductionKW:       esmutils.ToKW(t.PowerReturnedL3()),

		TotalConsumptionDayKWH:   esmutils.ToKWh(t.EnergyDeliveredTariff1()),
		TotalConsumptionNightKWH: esmutils.ToKWh(t.EnergyDeliveredTariff2()),
		TotalProductionDayKWH:    esmutils.ToKWh(t.EnergyReturnedTariff1()),
		TotalProductionNightKWH:  esmutils.ToKWh(t.EnergyReturnedTariff2()),

		AverageDemandKW: esmutils.ToKW(t.PowerMaxCurrentAverage()),

		CurrentTariff: esmutils.IntOrZero(t.ElectricityTariff()),
		L1VoltageV:    esmutils.ToV(t.VoltageL1()),
		L2VoltageV:    esmutils.ToV(t.VoltageL2()),
		L3VoltageV:    esmutils.ToV(t.VoltageL3()),
		L1CurrentA:    esmutils.ToA(t.CurrentL1()),
		L2CurrentA:    esmutils.ToA(t.CurrentL2()),
		L3CurrentA:    esmutils.ToA(t.CurrentL3()),

		PowerFailures:     esmutils.IntOrZero(t.ElectricityFailures()),
		LongPowerFailures: esmutils.IntOrZero(t.ElectricityLongFailures()),

		SwitchElectricity: esmutils.IntOrZero(t.ElectricitySwitchPosition()),
		SwitchGas:         esmutils.IntOrZero(t.GasValvePosition()),

		MeterSerialElectricity: esmutils.StringOrEmpty(t.EquipmentID()),
		MeterSerialGas:         esmutils.StringOrEmpty(t.GasEquipmentID()),

		Message: esmutils.StringOrEmpty(t.MessageLong()),
	}
	reading.NetPowerW = esmutils.KwToW(reading.CurrentConsumptionKW - reading.CurrentProductionKW)

	if ts := t.TimeStamp(); ts != nil {
		reading.Timestamp = ts.Format(time.RFC3339)
	}
	if peak := t.PowerDeliveredMaxRunningMonth(); peak != nil {
		reading.MonthPeakDemandKW = esmutils.ToKW(peak.Value)
		reading.MonthPeakDemandTime = formatTime(peak.Timestamp)
	}
	if gas := t.GasDelivered(); gas != nil {
		reading.GasConsumptionM3 = esmutils.ToM3(gas.Value)
		reading.GasTimestamp = formatTime(gas.Timestamp)
	}
	return reading
}

func formatTime(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.RFC3339)
}

func (r *MeterReading) ToJsonBytes() []byte {
	b, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	return b
}

// Returns nil when b is not a meter reading.
func MeterReadingFromJsonBytes(b []byte) *MeterReading {
	var reading MeterReading
	if err := json.Unmarshal(b, &reading); err != nil {
		return nil
	}
	return &reading
}
