// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/json"

	"github.com/comn-io/comnd/fault"
)

// RecoveryID - selects which of the candidate points a recoverable
// signature was made with
//
// bit 0 is the parity of Y and bit 1 is set when R.x overflowed the
// curve order
type RecoveryID uint8

// the four recovery ids
const (
	RecoveryEven RecoveryID = iota
	RecoveryOdd
	RecoveryEvenOverflow
	RecoveryOddOverflow
)

// compact signature header for a compressed key
const compactCompressedBase = 27 + 4

// Valid - true for the four defined values
func (id RecoveryID) Valid() bool {
	return id <= RecoveryOddOverflow
}

func (id RecoveryID) compactHeader() byte {
	return compactCompressedBase + byte(id)
}

func recoveryFromHeader(header byte) (RecoveryID, error) {
	id := RecoveryID(header - compactCompressedBase)
	if header < compactCompressedBase || !id.Valid() {
		return 0, fault.BadSignature
	}
	return id, nil
}

// UnmarshalJSON - only accept the defined values
func (id *RecoveryID) UnmarshalJSON(buffer []byte) error {
	var n uint8
	err := json.Unmarshal(buffer, &n)
	if nil != err {
		return fault.MalformedToken
	}
	r := RecoveryID(n)
	if !r.Valid() {
		return fault.MalformedToken
	}
	*id = r
	return nil
}
