package esmutils

import (
	"math"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
)

// Signed; negative means more production than consumption
func KwToW(kw float64) int32 {
	return int32(math.Round(kw * 1000))
}

// ToKW reads a power value as kW. Missing or non power values read as 0.
func ToKW(v *dsmr.UnitValue[float64]) float64 {
	if v == nil {
		return 0
	}
	switch v.Unit {
	case obis.UnitKW:
		return v.Value
	case obis.UnitW:
		return v.Value / 1000
	}
	return 0
}

func ToKWh(v *dsmr.UnitValue[float64]) float64 {
	if v == nil {
		return 0
	}
	switch v.Unit {
	case obis.UnitKWh:
		return v.Value
	case obis.UnitWh:
		return v.Value / 1000
	}
	return 0
}

// 1 m³ = 1000 dm³
func ToM3(v *dsmr.UnitValue[float64]) float64 {
	if v == nil {
		return 0
	}
	switch v.Unit {
	case obis.UnitM3:
		return v.Value
	case obis.UnitDM3:
		return v.Value / 1000
	}
	return 0
}

func ToV(v *dsmr.UnitValue[float64]) float64 {
	if v == nil {
		return 0
	}
	switch v.Unit {
	case obis.UnitV:
		return v.Value
	case obis.UnitMV:
		return v.Value / 1000
	}
	return 0
}

func ToA(v *dsmr.UnitValue[int]) float64 {
	if v == nil {
		return 0
	}
	switch v.Unit {
	case obis.UnitA:
		return float64(v.Value)
	case obis.UnitMA:
		return float64(v.Value) / 1000
	}
	return 0
}

// Pointer helpers for optional integer fields
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func StringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
