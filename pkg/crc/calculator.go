// Package crc computes and verifies the CRC16 checksum that closes a DSMR telegram.
package crc

import (
	"github.com/sigurn/crc16"
)

// Calculator computes the checksum of the telegram bytes it is given.
type Calculator interface {
	Checksum(data []byte) uint16
}

// Table is a Calculator backed by a precomputed 256-entry lookup table.
type Table struct {
	table *crc16.Table
}

// CRC16_ARC (reversed polynomial 0xA001, no xor in/out) is what DSMR meters use.
var defaultTable = New(crc16.CRC16_ARC)

// New builds the lookup table for the given parameters.
func New(params crc16.Params) *Table {
	return &Table{table: crc16.MakeTable(params)}
}

// Default returns the process-wide CRC16/ARC calculator.
// The table is built once and only read afterwards.
func Default() *Table {
	return defaultTable
}

func (t *Table) Checksum(data []byte) uint16 {
	return crc16.Checksum(data, t.table)
}
