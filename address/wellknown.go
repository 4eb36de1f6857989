// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"math"
)

// reserved addresses that are never minted for a key
//
// Public and Registered stand for classes of callers and have no
// record, ComnCoin (≈6D) is the coin treasury and owns the history crates
var (
	// anyone, even without a token
	Public = FromUint128(math.MaxUint64, math.MaxUint64)

	// anyone presenting a valid token
	Registered = FromUint128(math.MaxUint64, math.MaxUint64-1)

	// the coin treasury
	ComnCoin = FromUint128(0, 0xcc)
)

// IsWellKnown - true for the addresses that stand for a class of callers
func IsWellKnown(a Address) bool {
	return Public == a || Registered == a
}

// IsReserved - true if the address is never minted
func IsReserved(a Address) bool {
	return IsWellKnown(a) || ComnCoin == a
}
