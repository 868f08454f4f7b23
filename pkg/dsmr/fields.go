package dsmr

import (
	"iter"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
)

// DSMRVersion is the protocol version, falling back to the Belgian version field.
func (t *Telegram) DSMRVersion() *int {
	if v := t.Int(obis.DSMRVersion); v != nil {
		return v
	}
	return t.Int(obis.BelgianDSMRVersion)
}

func (t *Telegram) TimeStamp() *time.Time { return t.Timestamp(obis.TimeStamp) }
func (t *Telegram) EquipmentID() *string  { return t.Text(obis.EquipmentID) }

func (t *Telegram) EnergyDeliveredTariff1() *UnitValue[float64] {
	return t.DecimalUnit(obis.EnergyDeliveredTariff1)
}

func (t *Telegram) EnergyDeliveredTariff2() *UnitValue[float64] {
	return t.DecimalUnit(obis.EnergyDeliveredTariff2)
}

func (t *Telegram) EnergyReturnedTariff1() *UnitValue[float64] {
	return t.DecimalUnit(obis.EnergyReturnedTariff1)
}

func (t *Telegram) EnergyReturnedTariff2() *UnitValue[float64] {
	return t.DecimalUnit(obis.EnergyReturnedTariff2)
}

// ElectricityTariff is the active tariff indicator, 1 (low) or 2 (normal) in the Netherlands.
func (t *Telegram) ElectricityTariff() *int { return t.Int(obis.ElectricityTariff) }

func (t *Telegram) PowerDelivered() *UnitValue[float64] { return t.DecimalUnit(obis.PowerDelivered) }
func (t *Telegram) PowerReturned() *UnitValue[float64]  { return t.DecimalUnit(obis.PowerReturned) }
func (t *Telegram) ElectricityThreshold() *UnitValue[float64] {
	return t.DecimalUnit(obis.ElectricityThreshold)
}
func (t *Telegram) ElectricitySwitchPosition() *int { return t.Int(obis.ElectricitySwitchPosition) }
func (t *Telegram) ElectricityFailures() *int       { return t.Int(obis.ElectricityFailures) }
func (t *Telegram) ElectricityLongFailures() *int   { return t.Int(obis.ElectricityLongFailures) }

// ElectricityFailureLog lists the end time and duration of long power failures.
// The first two values (entry count and log id) are skipped.
func (t *Telegram) ElectricityFailureLog() iter.Seq[TimeStampedValue[time.Duration]] {
	return TimeStampedValues(t, obis.ElectricityFailureLog, 2, decodeSeconds)
}

func decodeSeconds(d obis.Descriptor, raw string) *time.Duration {
	v := DecodeInt64Unit(d, raw)
	if v == nil {
		return nil
	}
	duration := time.Duration(v.Value) * time.Second
	return &duration
}

func (t *Telegram) ElectricitySagsL1() *int   { return t.Int(obis.ElectricitySagsL1) }
func (t *Telegram) ElectricitySagsL2() *int   { return t.Int(obis.ElectricitySagsL2) }
func (t *Telegram) ElectricitySagsL3() *int   { return t.Int(obis.ElectricitySagsL3) }
func (t *Telegram) ElectricitySwellsL1() *int { return t.Int(obis.ElectricitySwellsL1) }
func (t *Telegram) ElectricitySwellsL2() *int { return t.Int(obis.ElectricitySwellsL2) }
func (t *Telegram) ElectricitySwellsL3() *int { return t.Int(obis.ElectricitySwellsL3) }

func (t *Telegram) MessageShort() *string { return t.Text(obis.MessageShort) }
func (t *Telegram) MessageLong() *string  { return t.Text(obis.MessageLong) }

func (t *Telegram) VoltageL1() *UnitValue[float64] { return t.DecimalUnit(obis.VoltageL1) }
func (t *Telegram) VoltageL2() *UnitValue[float64] { return t.DecimalUnit(obis.VoltageL2) }
func (t *Telegram) VoltageL3() *UnitValue[float64] { return t.DecimalUnit(obis.VoltageL3) }

func (t *Telegram) CurrentL1() *UnitValue[int] { return t.IntUnit(obis.CurrentL1) }
func (t *Telegram) CurrentL2() *UnitValue[int] { return t.IntUnit(obis.CurrentL2) }
func (t *Telegram) CurrentL3() *UnitValue[int] { return t.IntUnit(obis.CurrentL3) }

func (t *Telegram) PowerDeliveredL1() *UnitValue[float64] {
	return t.DecimalUnit(obis.PowerDeliveredL1)
}
func (t *Telegram) PowerDeliveredL2() *UnitValue[float64] {
	return t.DecimalUnit(obis.PowerDeliveredL2)
}
func (t *Telegram) PowerDeliveredL3() *UnitValue[float64] {
	return t.DecimalUnit(obis.PowerDeliveredL3)
}
func (t *Telegram) PowerReturnedL1() *UnitValue[float64] { return t.DecimalUnit(obis.PowerReturnedL1) }
func (t *Telegram) PowerReturnedL2() *UnitValue[float64] { return t.DecimalUnit(obis.PowerReturnedL2) }
func (t *Telegram) PowerReturnedL3() *UnitValue[float64] { return t.DecimalUnit(obis.PowerReturnedL3) }

// Belgian meters only.
func (t *Telegram) PowerMaxCurrentAverage() *UnitValue[float64] {
	return t.DecimalUnit(obis.BelgianPowerMaxCurrentAverage)
}

// PowerDeliveredMaxRunningMonth is the highest quarter-hour average of the running month (Belgian meters only).
func (t *Telegram) PowerDeliveredMaxRunningMonth() *TimeStampedValue[UnitValue[float64]] {
	return t.firstReading(obis.BelgianPowerDeliveredMaxRunningMonth)
}

func (t *Telegram) GasDeviceType() *int { return t.Int(obis.GasDeviceType) }

func (t *Telegram) GasEquipmentID() *string {
	if v := t.Text(obis.GasEquipmentID); v != nil {
		return v
	}
	return t.Text(obis.BelgianGasEquipmentID)
}

func (t *Telegram) GasValvePosition() *int { return t.Int(obis.GasValvePosition) }

// GasDelivered is the last gas meter reading. Belgian and pre DSMR 4 layouts are tried
// when the Dutch field is missing.
func (t *Telegram) GasDelivered() *TimeStampedValue[UnitValue[float64]] {
	for _, d := range []obis.Descriptor{obis.GasDelivered, obis.BelgianGasDelivered, obis.GasDeliveredLegacy} {
		if v := t.firstReading(d); v != nil {
			return v
		}
	}
	return nil
}

func (t *Telegram) ThermalDeviceType() *int     { return t.Int(obis.ThermalDeviceType) }
func (t *Telegram) ThermalEquipmentID() *string { return t.Text(obis.ThermalEquipmentID) }
func (t *Telegram) ThermalValvePosition() *int  { return t.Int(obis.ThermalValvePosition) }

func (t *Telegram) ThermalDelivered() *TimeStampedValue[UnitValue[float64]] {
	return t.firstReading(obis.ThermalDelivered)
}

func (t *Telegram) WaterDeviceType() *int     { return t.Int(obis.WaterDeviceType) }
func (t *Telegram) WaterEquipmentID() *string { return t.Text(obis.WaterEquipmentID) }
func (t *Telegram) WaterValvePosition() *int  { return t.Int(obis.WaterValvePosition) }

func (t *Telegram) WaterDelivered() *TimeStampedValue[UnitValue[float64]] {
	return t.firstReading(obis.WaterDelivered)
}

func (t *Telegram) SlaveDeviceType() *int     { return t.Int(obis.SlaveDeviceType) }
func (t *Telegram) SlaveEquipmentID() *string { return t.Text(obis.SlaveEquipmentID) }
func (t *Telegram) SlaveValvePosition() *int  { return t.Int(obis.SlaveValvePosition) }

func (t *Telegram) SlaveDelivered() *TimeStampedValue[UnitValue[float64]] {
	return t.firstReading(obis.SlaveDelivered)
}

// firstReading returns the first (timestamp)(value*unit) pair, or nil when its value does not decode.
func (t *Telegram) firstReading(d obis.Descriptor) *TimeStampedValue[UnitValue[float64]] {
	for v := range TimeStampedValues(t, d, 0, DecodeDecimalUnit) {
		if v.Value == nil {
			return nil
		}
		return &v
	}
	return nil
}
