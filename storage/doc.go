// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 16 byte big endian identifier
// 4. crate        = 16 byte uuid
// 5. key          = 33 byte compressed secp256k1 public key
// 6. type         = one byte access type
// 7. timestamp    = big endian uint64 unix nanoseconds (8 bytes)
// 8. *others*     = byte values of various length
//
// Addresses:
//
//	A ++ address                - registered address
//	                              data: JSON address record
//	M ++ name ++ 0x00 ++ address
//	                            - address by name
//	                              data: nil
//	K ++ key ++ address         - addresses controlled by a key
//	                              data: timestamp
//	L ++ address ++ key         - keys of an address
//	                              data: timestamp
//
// Crates:
//
//	C ++ crate                  - crate
//	                              data: JSON crate record
//	E ++ owner ++ name          - crate by owner and name
//	                              data: crate
//	G ++ crate ++ address ++ type
//	                            - access grant
//	                              data: JSON grant record
//	H ++ address ++ crate ++ type
//	                            - grants held by an address
//	                              data: nil
//	I ++ crate ++ path          - item
//	                              data: JSON item record
//
// Coins:
//
//	B ++ address                - balance
//	                              data: big endian int64 (8 bytes)
//	U ++ nonce                  - accepted transfer nonces
//	                              data: timestamp
//
// Testing:
//
//	Z ++ key                    - testing data
//
// All changes that must be atomic go through Store.Update which holds
// the single exclusive LevelDB transaction for the duration of the
// callback and discards it on every path that does not commit.
package storage
