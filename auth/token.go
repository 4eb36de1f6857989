// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/comn-io/comnd/fault"
)

// Scheme - the tag in front of the JSON token in an authorization header
const Scheme = "COMN"

// length of the r ‖ s part of a signature
const signatureLength = 64

// Token - a short lived bearer capability
type Token struct {
	Origin     string     `json:"origin"`
	Scope      string     `json:"scope"`
	ValidSecs  uint64     `json:"valid_secs"`
	Created    int64      `json:"created"`
	Signature  string     `json:"signature"`
	RecoveryID RecoveryID `json:"recid"`
}

// NewToken - sign a token for an origin and a list of scopes
//
// created is normally the current time minus a small delay to allow
// for clock skew between client and server
func NewToken(key *btcec.PrivateKey, origin string, scopes []string, valid time.Duration, created time.Time) (*Token, error) {
	if nil == key {
		return nil, fault.InvalidPrivateKey
	}
	if valid < 0 {
		return nil, fault.InvalidRequest
	}

	t := &Token{
		Origin:    origin,
		Scope:     strings.Join(scopes, ","),
		ValidSecs: uint64(valid / time.Second),
		Created:   created.Unix(),
	}

	digest := t.digest()
	compact := ecdsa.SignCompact(key, digest[:], true)

	id, err := recoveryFromHeader(compact[0])
	if nil != err {
		return nil, err
	}

	t.RecoveryID = id
	t.Signature = hex.EncodeToString(compact[1:])
	return t, nil
}

// Keccak-256 over: origin ‖ scope ‖ BE64(valid_secs) ‖ BE64(created)
func (t *Token) digest() [32]byte {
	n := make([]byte, 8)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(t.Origin))
	h.Write([]byte(t.Scope))
	binary.BigEndian.PutUint64(n, t.ValidSecs)
	h.Write(n)
	binary.BigEndian.PutUint64(n, uint64(t.Created))
	h.Write(n)

	digest := [32]byte{}
	copy(digest[:], h.Sum(nil))
	return digest
}

// Recover - the public key that signed the token
func (t *Token) Recover() (*btcec.PublicKey, error) {
	signature, err := hex.DecodeString(t.Signature)
	if nil != err || signatureLength != len(signature) {
		return nil, fault.BadSignature
	}
	if !t.RecoveryID.Valid() {
		return nil, fault.BadSignature
	}

	compact := make([]byte, 1, 1+signatureLength)
	compact[0] = t.RecoveryID.compactHeader()
	compact = append(compact, signature...)

	digest := t.digest()
	key, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if nil != err || nil == key {
		return nil, fault.UnrecoverableKey
	}
	return key, nil
}

// Scopes - the comma separated scope in order, empty entries are kept
func (t *Token) Scopes() []string {
	return strings.Split(t.Scope, ",")
}

// Expired - true once created + valid_secs has passed
//
// a token created in the future is not expired
func (t *Token) Expired(now time.Time) bool {
	n := now.Unix()
	if t.Created >= n {
		return false
	}
	// exact even when the difference exceeds the int64 range
	age := uint64(n) - uint64(t.Created)
	return age > t.ValidSecs
}

// Header - the authorization header form: "COMN {json}"
func (t *Token) Header() (string, error) {
	buffer, err := json.Marshal(t)
	if nil != err {
		return "", err
	}
	return Scheme + " " + string(buffer), nil
}

// ParseHeader - decode the authorization header form
func ParseHeader(header string) (*Token, error) {
	header = strings.TrimSpace(header)
	if "" == header {
		return nil, fault.MissingToken
	}

	s := strings.SplitN(header, " ", 2)
	if 2 != len(s) || Scheme != s[0] {
		return nil, fault.BadScheme
	}

	var t Token
	err := json.Unmarshal([]byte(s[1]), &t)
	if nil != err {
		return nil, fault.MalformedToken
	}
	return &t, nil
}
