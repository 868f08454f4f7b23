package obis

// Descriptors where Belgian (Fluvius) meters deviate from the Dutch ones.
var (
	BelgianDSMRVersion                   = descriptor(MustNew(0, 0, 96, 1, 4), "DSMR version", UnitNone)
	BelgianGasEquipmentID                = descriptor(MustNew(0, gasMBusID, 96, 1, 1), "Gas equipment id", UnitNone)
	BelgianGasDelivered                  = descriptor(MustNew(0, gasMBusID, 24, 2, 3), "Gas delivered", UnitM3)
	BelgianPowerMaxCurrentAverage        = descriptor(MustNew(1, 0, 1, 4, 0), "Current average demand - active energy import", UnitKW)
	BelgianPowerDeliveredMaxRunningMonth = descriptor(MustNew(1, 0, 1, 6, 0), "Peak power running month", UnitKW)
)

// Belgian is the registry of the Belgian descriptors.
var Belgian = NewTable(
	BelgianDSMRVersion,
	BelgianGasEquipmentID,
	BelgianGasDelivered,
	BelgianPowerMaxCurrentAverage,
	BelgianPowerDeliveredMaxRunningMonth,
)
