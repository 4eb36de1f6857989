// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - 128 bit identifiers and their text form
//
// The text form is the marker '≈' followed by base 32 digits.  Decoding
// is case insensitive and folds the letters O Q I B onto 0 0 1 8, so
// an address read aloud or copied by hand still decodes to the same
// value.
package address
