package obis

// M-Bus channels of the devices attached to the electricity meter.
const (
	gasMBusID     = 1
	waterMBusID   = 2
	thermalMBusID = 3
	slaveMBusID   = 4
)

func descriptor(id ID, description string, unit Unit) Descriptor {
	return Descriptor{ID: id, Description: description, Unit: unit, Factor: 1}
}

// Descriptors of the fields found in Dutch DSMR telegrams.
var (
	DSMRVersion               = descriptor(MustNew(1, 3, 0, 2, 8), "DSMR version", UnitNone)
	TimeStamp                 = descriptor(MustNew(0, 0, 1, 0, 0), "Timestamp", UnitNone)
	EquipmentID               = descriptor(MustNew(0, 0, 96, 1, 1), "Equipment ID", UnitNone)
	EnergyDeliveredTariff1    = descriptor(MustNew(1, 0, 1, 8, 1), "Energy delivered (Tariff 1)", UnitKWh)
	EnergyDeliveredTariff2    = descriptor(MustNew(1, 0, 1, 8, 2), "Energy delivered (Tariff 2)", UnitKWh)
	EnergyReturnedTariff1     = descriptor(MustNew(1, 0, 2, 8, 1), "Energy returned (Tariff 1)", UnitKWh)
	EnergyReturnedTariff2     = descriptor(MustNew(1, 0, 2, 8, 2), "Energy returned (Tariff 2)", UnitKWh)
	ElectricityTariff         = descriptor(MustNew(0, 0, 96, 14, 0), "Electricity tariff", UnitNone)
	PowerDelivered            = descriptor(MustNew(1, 0, 1, 7, 0), "Power delivered", UnitKW)
	PowerReturned             = descriptor(MustNew(1, 0, 2, 7, 0), "Power returned", UnitKW)
	ElectricityThreshold      = descriptor(MustNew(0, 0, 17, 0, 0), "Electricity threshold", UnitKW)
	ElectricitySwitchPosition = descriptor(MustNew(0, 0, 96, 3, 10), "Electricity switch position", UnitNone)
	ElectricityFailures       = descriptor(MustNew(0, 0, 96, 7, 21), "Electricity failures", UnitNone)
	ElectricityLongFailures   = descriptor(MustNew(0, 0, 96, 7, 9), "Electricity long failures", UnitNone)
	ElectricityFailureLog     = descriptor(MustNew(1, 0, 99, 97, 0), "Electricity failure log", UnitS)
	ElectricitySagsL1         = descriptor(MustNew(1, 0, 32, 32, 0), "Electricity sags l1", UnitNone)
	ElectricitySagsL2         = descriptor(MustNew(1, 0, 52, 32, 0), "Electricity sags l2", UnitNone)
	ElectricitySagsL3         = descriptor(MustNew(1, 0, 72, 32, 0), "Electricity sags l3", UnitNone)
	ElectricitySwellsL1       = descriptor(MustNew(1, 0, 32, 36, 0), "Electricity swells l1", UnitNone)
	ElectricitySwellsL2       = descriptor(MustNew(1, 0, 52, 36, 0), "Electricity swells l2", UnitNone)
	ElectricitySwellsL3       = descriptor(MustNew(1, 0, 72, 36, 0), "Electricity swells l3", UnitNone)
	MessageShort              = descriptor(MustNew(0, 0, 96, 13, 1), "Message short", UnitNone)
	MessageLong               = descriptor(MustNew(0, 0, 96, 13, 0), "Message long", UnitNone)
	VoltageL1                 = descriptor(MustNew(1, 0, 32, 7, 0), "Voltage l1", UnitV)
	VoltageL2                 = descriptor(MustNew(1, 0, 52, 7, 0), "Voltage l2", UnitV)
	VoltageL3                 = descriptor(MustNew(1, 0, 72, 7, 0), "Voltage l3", UnitV)
	CurrentL1                 = descriptor(MustNew(1, 0, 31, 7, 0), "Current l1", UnitA)
	CurrentL2                 = descriptor(MustNew(1, 0, 51, 7, 0), "Current l2", UnitA)
	CurrentL3                 = descriptor(MustNew(1, 0, 71, 7, 0), "Current l3", UnitA)
	PowerDeliveredL1          = descriptor(MustNew(1, 0, 21, 7, 0), "Power delivered l1", UnitKW)
	PowerDeliveredL2          = descriptor(MustNew(1, 0, 41, 7, 0), "Power delivered l2", UnitKW)
	PowerDeliveredL3          = descriptor(MustNew(1, 0, 61, 7, 0), "Power delivered l3", UnitKW)
	PowerReturnedL1           = descriptor(MustNew(1, 0, 22, 7, 0), "Power returned l1", UnitKW)
	PowerReturnedL2           = descriptor(MustNew(1, 0, 42, 7, 0), "Power returned l2", UnitKW)
	PowerReturnedL3           = descriptor(MustNew(1, 0, 62, 7, 0), "Power returned l3", UnitKW)
	GasDeviceType             = descriptor(MustNew(0, gasMBusID, 24, 1, 0), "Gas device type", UnitNone)
	GasEquipmentID            = descriptor(MustNew(0, gasMBusID, 96, 1, 0), "Gas equipment id", UnitNone)
	GasValvePosition          = descriptor(MustNew(0, gasMBusID, 24, 4, 0), "Gas valve position", UnitNone)
	GasDelivered              = descriptor(MustNew(0, gasMBusID, 24, 2, 1), "Gas delivered", UnitM3)
	ThermalDeviceType         = descriptor(MustNew(0, thermalMBusID, 24, 1, 0), "Thermal device type", UnitNone)
	ThermalEquipmentID        = descriptor(MustNew(0, thermalMBusID, 96, 1, 0), "Thermal equipment id", UnitNone)
	ThermalValvePosition      = descriptor(MustNew(0, thermalMBusID, 24, 4, 0), "Thermal valve position", UnitNone)
	ThermalDelivered          = descriptor(MustNew(0, thermalMBusID, 24, 2, 1), "Thermal delivered", UnitMJ)
	WaterDeviceType           = descriptor(MustNew(0, waterMBusID, 24, 1, 0), "Water device type", UnitNone)
	WaterEquipmentID          = descriptor(MustNew(0, waterMBusID, 96, 1, 0), "Water equipment id", UnitNone)
	WaterValvePosition        = descriptor(MustNew(0, waterMBusID, 24, 4, 0), "Water valve position", UnitNone)
	WaterDelivered            = descriptor(MustNew(0, waterMBusID, 24, 2, 1), "Water delivered", UnitM3)
	SlaveDeviceType           = descriptor(MustNew(0, slaveMBusID, 24, 1, 0), "Slave device type", UnitNone)
	SlaveEquipmentID          = descriptor(MustNew(0, slaveMBusID, 96, 1, 0), "Slave equipment id", UnitNone)
	SlaveValvePosition        = descriptor(MustNew(0, slaveMBusID, 24, 4, 0), "Slave valve position", UnitNone)
	SlaveDelivered            = descriptor(MustNew(0, slaveMBusID, 24, 2, 1), "Slave delivered", UnitM3)

	// DSMR 2.2 and 3 meters report gas as (timestamp)...(unit) with the reading on the next line.
	GasDeliveredLegacy = descriptor(MustNew(0, gasMBusID, 24, 3, 0), "Gas delivered (pre DSMR 4)", UnitM3)
)

// Known is the registry of every descriptor above.
var Known = NewTable(
	DSMRVersion, TimeStamp, EquipmentID,
	EnergyDeliveredTariff1, EnergyDeliveredTariff2, EnergyReturnedTariff1, EnergyReturnedTariff2,
	ElectricityTariff, PowerDelivered, PowerReturned, ElectricityThreshold, ElectricitySwitchPosition,
	ElectricityFailures, ElectricityLongFailures, ElectricityFailureLog,
	ElectricitySagsL1, ElectricitySagsL2, ElectricitySagsL3,
	ElectricitySwellsL1, ElectricitySwellsL2, ElectricitySwellsL3,
	MessageShort, MessageLong,
	VoltageL1, VoltageL2, VoltageL3,
	CurrentL1, CurrentL2, CurrentL3,
	PowerDeliveredL1, PowerDeliveredL2, PowerDeliveredL3,
	PowerReturnedL1, PowerReturnedL2, PowerReturnedL3,
	GasDeviceType, GasEquipmentID, GasValvePosition, GasDelivered, GasDeliveredLegacy,
	ThermalDeviceType, ThermalEquipmentID, ThermalValvePosition, ThermalDelivered,
	WaterDeviceType, WaterEquipmentID, WaterValvePosition, WaterDelivered,
	SlaveDeviceType, SlaveEquipmentID, SlaveValvePosition, SlaveDelivered,
)
