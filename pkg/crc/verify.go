package crc

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrChecksum          = errors.New("checksum error")
	ErrMalformedChecksum = fmt.Errorf("%w: checksum must be 4 hex digits", ErrChecksum)
)

// MismatchError reports a telegram whose claimed checksum differs from the calculated one.
type MismatchError struct {
	Calculated uint16
	Claimed    uint16
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch; expected '%04X', found '%04X'", e.Calculated, e.Claimed)
}

func (e *MismatchError) Unwrap() error {
	return ErrChecksum
}

// Verify checks the checksum that follows the last '!' in raw.
// The covered region runs from the first byte up to and including that '!'.
func Verify(calc Calculator, raw []byte) error {
	if calc == nil {
		calc = Default()
	}

	end := bytes.LastIndexByte(raw, '!')
	if end < 0 {
		return ErrMalformedChecksum
	}

	claimedHex := raw[end+1:]
	if i := bytes.IndexAny(claimedHex, "\r\n"); i >= 0 {
		claimedHex = claimedHex[:i]
	}
	if len(claimedHex) != 4 {
		return ErrMalformedChecksum
	}

	claimed, err := strconv.ParseUint(string(claimedHex), 16, 16)
	if err != nil {
		return ErrMalformedChecksum
	}

	calculated := calc.Checksum(raw[:end+1])
	if uint16(claimed) != calculated {
		return &MismatchError{Calculated: calculated, Claimed: uint16(claimed)}
	}
	return nil
}

// Format renders a checksum the way it appears on the wire.
func Format(sum uint16) string {
	return fmt.Sprintf("%04X", sum)
}
