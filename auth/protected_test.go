// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/fixtures"
)

func TestProtect(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)
	message := `{"receiver":"≈a","amount":100,"nonce":"n1"}`

	request, err := auth.Protect(key, message)
	assert.Nil(t, err, "protect")
	assert.Equal(t, message, request.Message, "message kept")

	proof, err := hex.DecodeString(request.Proof)
	assert.Nil(t, err, "hex proof")
	assert.Equal(t, 64, len(proof), "proof length")

	msg, err := request.Verify(key.PubKey())
	assert.Nil(t, err, "verify")
	assert.Equal(t, message, msg, "released message")

	buffer, err := json.Marshal(request)
	assert.Nil(t, err, "marshal")
	assert.True(t, strings.HasPrefix(string(buffer), `{"msg":`), "wire form: %s", buffer)
}

func TestProtectTamper(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)

	request, err := auth.Protect(key, `{"amount":100}`)
	assert.Nil(t, err, "protect")

	replayed := *request
	replayed.Message = `{"amount":100000}`
	_, err = replayed.Verify(key.PubKey())
	assert.Equal(t, fault.SignatureMismatch, err, "changed message")

	_, err = request.Verify(auth.PrivateKeyFromSeed(fixtures.OtherSeed).PubKey())
	assert.Equal(t, fault.SignatureMismatch, err, "other key")

	broken := *request
	broken.Proof = "not hex"
	_, err = broken.Verify(key.PubKey())
	assert.Equal(t, fault.BadProofEncoding, err, "bad encoding")

	broken.Proof = request.Proof[:126]
	_, err = broken.Verify(key.PubKey())
	assert.Equal(t, fault.BadProofEncoding, err, "short proof")

	broken.Proof = strings.Repeat("ff", 64)
	_, err = broken.Verify(key.PubKey())
	assert.Equal(t, fault.SignatureMismatch, err, "r and s out of range")

	broken.Proof = strings.Repeat("00", 64)
	_, err = broken.Verify(key.PubKey())
	assert.Equal(t, fault.SignatureMismatch, err, "zero signature")
}

// a token signature must not be usable as a payload proof
func TestProofIsNotTokenSignature(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)

	token, err := auth.NewToken(key, fixtures.Origin, []string{"transaction"}, 0, now)
	assert.Nil(t, err, "new token")

	request := auth.ProtectedRequest{
		Message: fixtures.Origin + "transaction",
		Proof:   token.Signature,
	}
	_, err = request.Verify(key.PubKey())
	assert.Equal(t, fault.SignatureMismatch, err, "cross protocol signature")
}

func TestKeys(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)
	h := auth.PublicKeyHex(key.PubKey())
	assert.Equal(t, 66, len(h), "compressed hex length")

	pub, err := auth.ParsePublicKeyHex(h)
	assert.Nil(t, err, "parse")
	assert.True(t, pub.IsEqual(key.PubKey()), "same key")

	_, err = auth.ParsePublicKeyHex(h[:64])
	assert.Equal(t, fault.InvalidPublicKey, err, "short key")

	_, err = auth.ParsePublicKeyHex("zz")
	assert.Equal(t, fault.InvalidPublicKey, err, "not hex")

	_, err = auth.PrivateKeyFromHex("1234")
	assert.Equal(t, fault.InvalidPrivateKey, err, "short private key")

	k, err := auth.NewPrivateKey()
	assert.Nil(t, err, "random key")
	assert.False(t, k.PubKey().IsEqual(key.PubKey()), "distinct key")
}
