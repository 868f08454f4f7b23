// Package obis holds the OBIS identifiers, units and descriptors used to address
// the values inside a DSMR telegram.
package obis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Absent marks an unused part of an ID.
const Absent byte = 255

var ErrInvalidID = errors.New("invalid OBIS id")

// ID is an OBIS identifier A-B:C.D.E.F. Unused parts hold Absent.
type ID [6]byte

// None is the identifier with every part absent.
var None = ID{Absent, Absent, Absent, Absent, Absent, Absent}

// New builds an ID from up to six parts; missing trailing parts are Absent.
func New(parts ...byte) (ID, error) {
	if len(parts) > len(None) {
		return None, fmt.Errorf("%w: too many parts (%d)", ErrInvalidID, len(parts))
	}
	id := None
	copy(id[:], parts)
	return id, nil
}

// MustNew is New for static tables. It panics on error.
func MustNew(parts ...byte) ID {
	id, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse reads an ID from its text form. Any of '-', ':' and '.' separates parts,
// in any position.
func Parse(value string) (ID, error) {
	if value == "" {
		return None, fmt.Errorf("%w: empty id", ErrInvalidID)
	}

	tokens := splitParts(value, len(None)+1)
	parts := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		part, ok := parsePart(token)
		if !ok {
			return None, fmt.Errorf("%w: invalid value '%s' in string '%s'", ErrInvalidID, token, value)
		}
		parts = append(parts, part)
	}
	return New(parts...)
}

// MustParse is Parse for static tables. It panics on error.
func MustParse(value string) ID {
	id, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}

// splitParts splits on the separators into at most n tokens; the last token keeps the remainder.
func splitParts(value string, n int) []string {
	tokens := make([]string, 0, n)
	for len(tokens) < n-1 {
		i := strings.IndexAny(value, "-:.")
		if i < 0 {
			break
		}
		tokens = append(tokens, value[:i])
		value = value[i+1:]
	}
	return append(tokens, value)
}

// parsePart accepts plain decimal digits in 0..255.
func parsePart(token string) (byte, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

func (id ID) A() byte { return id[0] }
func (id ID) B() byte { return id[1] }
func (id ID) C() byte { return id[2] }
func (id ID) D() byte { return id[3] }
func (id ID) E() byte { return id[4] }
func (id ID) F() byte { return id[5] }

// String writes the leading present parts as A-B:C.D.E.F and stops at the first absent part.
func (id ID) String() string {
	var sb strings.Builder
	for i, part := range id {
		if part == Absent {
			break
		}
		switch i {
		case 0:
		case 1:
			sb.WriteByte('-')
		case 2:
			sb.WriteByte(':')
		default:
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(part)))
	}
	return sb.String()
}
