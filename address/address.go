// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/comn-io/comnd/fault"
)

// Marker - the leading character of the text form of an address
const Marker = '≈'

// Length - number of bytes in an address
const Length = 16

// Address - a 128 bit identifier stored big endian
type Address [Length]byte

// FromUint128 - create an address from the high and low 64 bit halves
func FromUint128(hi uint64, lo uint64) Address {
	a := Address{}
	binary.BigEndian.PutUint64(a[:8], hi)
	binary.BigEndian.PutUint64(a[8:], lo)
	return a
}

// Uint128 - the high and low 64 bit halves
func (a Address) Uint128() (hi uint64, lo uint64) {
	return binary.BigEndian.Uint64(a[:8]), binary.BigEndian.Uint64(a[8:])
}

// FromBytes - create an address from its 16 byte binary form
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.AddressOverflow
	}
	copy(a[:], buffer)
	return a, nil
}

// Bytes - the binary form, suitable for database keys
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// FromUUID - reinterpret the 128 bits of a uuid
func FromUUID(u uuid.UUID) Address {
	return Address(u)
}

// ParseUUID - read the canonical uuid text form
func ParseUUID(s string) (Address, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Address{}, fault.InvalidUUID
	}
	return FromUUID(u), nil
}

// UUID - the 128 bits as a uuid
func (a Address) UUID() uuid.UUID {
	return uuid.UUID(a)
}

// Random - a fresh address from a version 4 uuid
func Random() Address {
	return FromUUID(uuid.New())
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return Address{} == a
}

// New - parse an address from its marked text form
func New(text string) (Address, error) {
	r, size := utf8.DecodeRuneInString(text)
	if Marker != r {
		return Address{}, fault.MissingAddressMarker
	}
	return Decode(text[size:])
}

// String - the marked text form
func (a Address) String() string {
	return string(Marker) + Encode(a)
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text to address
func (a *Address) UnmarshalText(s []byte) error {
	addr, err := New(strings.TrimSpace(string(s)))
	if nil != err {
		return err
	}
	*a = addr
	return nil
}
