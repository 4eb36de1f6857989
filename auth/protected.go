// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"lukechampine.com/blake3"

	"github.com/comn-io/comnd/fault"
)

// ProtectedRequest - a request body signed by the bearer of a token
//
// the message digest is BLAKE3-256, never the Keccak-256 used for tokens
type ProtectedRequest struct {
	Message string `json:"msg"`
	Proof   string `json:"proof"`
}

// Protect - sign a message
func Protect(key *btcec.PrivateKey, message string) (*ProtectedRequest, error) {
	if nil == key {
		return nil, fault.InvalidPrivateKey
	}

	digest := blake3.Sum256([]byte(message))
	compact := ecdsa.SignCompact(key, digest[:], true)

	return &ProtectedRequest{
		Message: message,
		Proof:   hex.EncodeToString(compact[1:]),
	}, nil
}

// Verify - check the proof against a key, returning the message only
// when the signature matches
func (p *ProtectedRequest) Verify(key *btcec.PublicKey) (string, error) {
	if nil == p || nil == key {
		return "", fault.SignatureMismatch
	}

	signature, err := hex.DecodeString(p.Proof)
	if nil != err || signatureLength != len(signature) {
		return "", fault.BadProofEncoding
	}

	var r, s btcec.ModNScalar
	if r.SetByteSlice(signature[:32]) || s.SetByteSlice(signature[32:]) {
		return "", fault.SignatureMismatch
	}
	if r.IsZero() || s.IsZero() {
		return "", fault.SignatureMismatch
	}

	digest := blake3.Sum256([]byte(p.Message))
	if !ecdsa.NewSignature(&r, &s).Verify(digest[:], key) {
		return "", fault.SignatureMismatch
	}
	return p.Message, nil
}
