// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/comn-io/comnd/fault"
)

// PublicKeyLength - size of a compressed public key
const PublicKeyLength = 33

// NewPrivateKey - a random secp256k1 key
func NewPrivateKey() (*btcec.PrivateKey, error) {
	return btcec.NewPrivateKey()
}

// PrivateKeyFromSeed - a deterministic key from the SHA-256 of a phrase
func PrivateKeyFromSeed(seed string) *btcec.PrivateKey {
	digest := sha256.Sum256([]byte(seed))
	key, _ := btcec.PrivKeyFromBytes(digest[:])
	return key
}

// PrivateKeyFromHex - read the 32 byte hex form of a secret key
func PrivateKeyFromHex(s string) (*btcec.PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err || 32 != len(buffer) {
		return nil, fault.InvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(buffer)
	return key, nil
}

// ParsePublicKey - read a 33 byte compressed public key
func ParsePublicKey(buffer []byte) (*btcec.PublicKey, error) {
	if PublicKeyLength != len(buffer) {
		return nil, fault.InvalidPublicKey
	}
	key, err := btcec.ParsePubKey(buffer)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}
	return key, nil
}

// ParsePublicKeyHex - read the hex of a compressed public key
func ParsePublicKeyHex(s string) (*btcec.PublicKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}
	return ParsePublicKey(buffer)
}

// PublicKeyHex - hex of the compressed form
func PublicKeyHex(key *btcec.PublicKey) string {
	return hex.EncodeToString(key.SerializeCompressed())
}
