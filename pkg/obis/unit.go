package obis

// Unit is the physical unit a telegram value is expressed in.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitW
	UnitKW
	UnitWh
	UnitKWh
	UnitV
	UnitMV
	UnitA
	UnitMA
	UnitM3
	UnitDM3
	UnitGJ
	UnitMJ
	UnitS
)

// Wire names, case sensitive.
var unitNames = [...]string{
	UnitNone: "",
	UnitW:    "W",
	UnitKW:   "kW",
	UnitWh:   "Wh",
	UnitKWh:  "kWh",
	UnitV:    "V",
	UnitMV:   "mV",
	UnitA:    "A",
	UnitMA:   "mA",
	UnitM3:   "m3",
	UnitDM3:  "dm3",
	UnitGJ:   "GJ",
	UnitMJ:   "MJ",
	UnitS:    "s",
}

// ParseUnit maps the unit suffix of a telegram value ("kWh" in "001.234*kWh").
// An empty suffix is not a unit.
func ParseUnit(s string) (Unit, bool) {
	if s == "" {
		return UnitNone, false
	}
	for u, name := range unitNames {
		if name == s {
			return Unit(u), true
		}
	}
	return UnitNone, false
}

// String returns the wire name of the unit.
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return ""
}

// Symbol returns the display form of the unit.
func (u Unit) Symbol() string {
	switch u {
	case UnitM3:
		return "m³"
	case UnitDM3:
		return "dm³"
	default:
		return u.String()
	}
}
