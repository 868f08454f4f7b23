package esmutils

import (
	"testing"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
	"github.com/stretchr/testify/require"
)

func TestKwToW(t *testing.T) {
	require.Equal(t, int32(1193), KwToW(1.193))
	require.Equal(t, int32(-250), KwToW(-0.25))
	require.Equal(t, int32(0), KwToW(0))
}

func TestToKW(t *testing.T) {
	require.Equal(t, 1.5, ToKW(&dsmr.UnitValue[float64]{Value: 1.5, Unit: obis.UnitKW}))
	require.Equal(t, 1.5, ToKW(&dsmr.UnitValue[float64]{Value: 1500, Unit: obis.UnitW}))
	require.Zero(t, ToKW(&dsmr.UnitValue[float64]{Value: 1500, Unit: obis.UnitKWh}))
	require.Zero(t, ToKW(nil))
}

func TestToKWh(t *testing.T) {
	require.Equal(t, 2.0, ToKWh(&dsmr.UnitValue[float64]{Value: 2000, Unit: obis.UnitWh}))
	require.Equal(t, 2.0, ToKWh(&dsmr.UnitValue[float64]{Value: 2, Unit: obis.UnitKWh}))
	require.Zero(t, ToKWh(&dsmr.UnitValue[float64]{Value: 2, Unit: obis.UnitKW}))
	require.Zero(t, ToKWh(nil))
}

func TestToM3(t *testing.T) {
	require.Equal(t, 12.5, ToM3(&dsmr.UnitValue[float64]{Value: 12500, Unit: obis.UnitDM3}))
	require.Equal(t, 12.5, ToM3(&dsmr.UnitValue[float64]{Value: 12.5, Unit: obis.UnitM3}))
	require.Zero(t, ToM3(&dsmr.UnitValue[float64]{Value: 12.5, Unit: obis.UnitGJ}))
	require.Zero(t, ToM3(nil))
}

func TestToVAndA(t *testing.T) {
	require.Equal(t, 230.0, ToV(&dsmr.UnitValue[float64]{Value: 230000, Unit: obis.UnitMV}))
	require.Equal(t, 230.1, ToV(&dsmr.UnitValue[float64]{Value: 230.1, Unit: obis.UnitV}))
	require.Equal(t, 3.0, ToA(&dsmr.UnitValue[int]{Value: 3, Unit: obis.UnitA}))
	require.Equal(t, 0.5, ToA(&dsmr.UnitValue[int]{Value: 500, Unit: obis.UnitMA}))
	require.Zero(t, ToA(nil))
}

func TestPointerHelpers(t *testing.T) {
	n, s := 3, "abc"
	require.Equal(t, 3, IntOrZero(&n))
	require.Zero(t, IntOrZero(nil))
	require.Equal(t, "abc", StringOrEmpty(&s))
	require.Empty(t, StringOrEmpty(nil))
}
