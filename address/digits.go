// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"unicode/utf8"

	"github.com/comn-io/comnd/fault"
)

// the 32 digits, B I O and Q are left out as they resemble 8 1 0 0
const digits = "0123456789ACDEFGHJKLMNPRSTUVWXYZ"

const (
	radixBits = 5
	digitMask = 1<<radixBits - 1
	invalid   = 0xff
)

// ASCII character to digit value after folding look-alikes
var digitValue [128]byte

func init() {
	for i := range digitValue {
		digitValue[i] = invalid
	}
	for i := 0; i < len(digits); i += 1 {
		c := digits[i]
		digitValue[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			digitValue[c+'a'-'A'] = byte(i)
		}
	}

	confusable := map[byte]byte{
		'B': '8', 'b': '8',
		'I': '1', 'i': '1',
		'O': '0', 'o': '0',
		'Q': '0', 'q': '0',
	}
	for c, d := range confusable {
		digitValue[c] = digitValue[d]
	}
}

// Encode - digits of the 128 bit value, most significant first, no padding
//
// zero encodes as a single "0"
func Encode(a Address) string {
	hi, lo := a.Uint128()

	// 128 bits need at most 26 five bit digits
	buffer := [26]byte{}
	n := len(buffer)
	for {
		n -= 1
		buffer[n] = digits[lo&digitMask]

		lo = lo>>radixBits | hi<<(64-radixBits)
		hi >>= radixBits

		if 0 == hi && 0 == lo {
			break
		}
	}
	return string(buffer[n:])
}

// Decode - convert digits to a 128 bit value
//
// each character is folded before lookup so that lower case and
// look-alike letters are accepted
func Decode(s string) (Address, error) {
	if 0 == len(s) {
		return Address{}, fault.EmptyAddress
	}

	hi := uint64(0)
	lo := uint64(0)
	for _, r := range s {
		if r >= utf8.RuneSelf {
			return Address{}, fault.InvalidAddressCharacter
		}
		d := digitValue[r]
		if invalid == d {
			return Address{}, fault.InvalidAddressCharacter
		}

		// the top five bits must be free before shifting
		if 0 != hi>>(64-radixBits) {
			return Address{}, fault.AddressOverflow
		}
		hi = hi<<radixBits | lo>>(64-radixBits)
		lo = lo<<radixBits | uint64(d)
	}
	return FromUint128(hi, lo), nil
}
