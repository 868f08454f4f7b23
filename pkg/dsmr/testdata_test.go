package dsmr

import "strings"

func telegram(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// DSMR 5 meter, checksum included.
var dsmr5Telegram = telegram(
	`/ISk5\2MT382-1000`,
	``,
	`1-3:0.2.8(50)`,
	`0-0:1.0.0(101209113020W)`,
	`0-0:96.1.1(4B384547303034303436333935353037)`,
	`1-0:1.8.1(123456.789*kWh)`,
	`1-0:1.8.2(123456.789*kWh)`,
	`1-0:2.8.1(123456.789*kWh)`,
	`1-0:2.8.2(123456.789*kWh)`,
	`0-0:96.14.0(0002)`,
	`1-0:1.7.0(01.193*kW)`,
	`1-0:2.7.0(00.000*kW)`,
	`0-0:96.7.21(00004)`,
	`0-0:96.7.9(00002)`,
	`1-0:99.97.0(2)(0-0:96.7.19)(101208152415W)(0000000240*s)(101208151004W)(0000000301*s)`,
	`1-0:32.32.0(00002)`,
	`1-0:52.32.0(00001)`,
	`1-0:72.32.0(00000)`,
	`1-0:32.36.0(00000)`,
	`1-0:52.36.0(00003)`,
	`1-0:72.36.0(00000)`,
	`0-0:96.13.0(303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F)`,
	`1-0:32.7.0(220.1*V)`,
	`1-0:52.7.0(220.2*V)`,
	`1-0:72.7.0(220.3*V)`,
	`1-0:31.7.0(001*A)`,
	`1-0:51.7.0(002*A)`,
	`1-0:71.7.0(003*A)`,
	`1-0:21.7.0(01.111*kW)`,
	`1-0:41.7.0(02.222*kW)`,
	`1-0:61.7.0(03.333*kW)`,
	`1-0:22.7.0(04.444*kW)`,
	`1-0:42.7.0(05.555*kW)`,
	`1-0:62.7.0(06.666*kW)`,
	`0-1:24.1.0(003)`,
	`0-1:96.1.0(3232323241424344313233343536373839)`,
	`0-1:24.2.1(101209112500W)(12785.123*m3)`,
	`!E47C`,
	``,
)

// Fluvius meter with the Belgian ids for version, gas and peak demand.
var belgianTelegram = telegram(
	`/FLU5\253769484_A`,
	``,
	`0-0:96.1.4(50217)`,
	`0-0:96.1.1(3153414123456789303133313031)`,
	`0-0:1.0.0(200512135409S)`,
	`1-0:1.8.1(000000.034*kWh)`,
	`1-0:1.8.2(000015.758*kWh)`,
	`1-0:2.8.1(000000.000*kWh)`,
	`1-0:2.8.2(000000.011*kWh)`,
	`1-0:1.4.0(02.351*kW)`,
	`1-0:1.6.0(200509134558S)(02.589*kW)`,
	`0-0:96.14.0(0001)`,
	`1-0:1.7.0(00.000*kW)`,
	`1-0:2.7.0(00.000*kW)`,
	`1-0:32.7.0(234.7*V)`,
	`0-0:96.3.10(1)`,
	`0-0:17.0.0(999.9*kW)`,
	`0-0:96.13.0()`,
	`0-1:24.1.0(003)`,
	`0-1:96.1.1(37464C4F32313139303333373333)`,
	`0-1:24.4.0(1)`,
	`0-1:24.2.3(200512134558S)(00112.384*m3)`,
	`!E7F2`,
	``,
)

// DSMR 2.2 meter: no checksum and the gas reading on a line of its own.
var v22Telegram = telegram(
	`/Test\V2_2-Telegram`,
	``,
	`0-0:96.1.1(30313233343536)`,
	`1-0:1.8.1(00001.234*kWh)`,
	`1-0:1.8.2(00002.345*kWh)`,
	`1-0:2.8.1(00003.456*kWh)`,
	`1-0:2.8.2(00004.567*kWh)`,
	`0-0:96.14.0(0001)`,
	`1-0:1.7.0(0888.88*kW)`,
	`1-0:2.7.0(0999.99*kW)`,
	`0-0:17.0.0(0999.00*kW)`,
	`0-0:96.3.10(1)`,
	`0-0:96.13.1()`,
	`0-0:96.13.0()`,
	`0-1:24.1.0(3)`,
	`0-1:96.1.0(36353433323130)`,
	`0-1:24.3.0(121106140000)(00)(60)(1)(0-1:24.2.1)(m3)`,
	`(00012.345)`,
	`0-1:24.4.0(1)`,
	`!`,
)

var v3Telegram = telegram(
	`/Test\V3-Telegram`,
	``,
	`0-0:96.1.1(466F6F42617242617A313233)`,
	`1-0:1.8.1(12345.678*kWh)`,
	`1-0:1.8.2(23456.789*kWh)`,
	`1-0:2.8.1(34567.890*kWh)`,
	`1-0:2.8.2(45678.901*kWh)`,
	`0-0:96.14.0(0002)`,
	`1-0:1.7.0(0003.14*kW)`,
	`1-0:2.7.0(0420.69*kW)`,
	`0-0:17.0.0(0012.3*kW)`,
	`0-0:96.3.10(1)`,
	`0-0:96.13.1(303132333435363738)`,
	`0-0:96.13.0(303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F303132333435363738393A3B3C3D3E3F)`,
	`0-1:24.1.0(03)`,
	`0-1:96.1.0(3031323341424344313233343536373839)`,
	`0-1:24.3.0(121106140000)(00)(60)(1)(0-1:24.2.1)(m3)`,
	`(00042.001)`,
	`0-1:24.4.0(1)`,
	`!`,
)
