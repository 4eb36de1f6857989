// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
)

// Signer - makes tokens and protected requests for one key
type Signer struct {
	Key    *btcec.PrivateKey
	Origin string
	Scopes []string
	Valid  time.Duration

	// tokens are back dated by this much
	Skew time.Duration
}

// Header - a fresh authorization header
func (s *Signer) Header() (string, error) {
	if nil == s || nil == s.Key {
		return "", fault.MissingToken
	}
	token, err := auth.NewToken(s.Key, s.Origin, s.Scopes, s.Valid, time.Now().Add(-s.Skew))
	if nil != err {
		return "", err
	}
	return token.Header()
}

// Protect - sign the JSON form of a message
func (s *Signer) Protect(message interface{}) (*auth.ProtectedRequest, error) {
	if nil == s || nil == s.Key {
		return nil, fault.MissingToken
	}
	buffer, err := json.Marshal(message)
	if nil != err {
		return nil, err
	}
	return auth.Protect(s.Key, string(buffer))
}

// header and signed body for a call that changes state
func (c *Client) signed(message interface{}) (string, *auth.ProtectedRequest, error) {
	header, err := c.signer.Header()
	if nil != err {
		return "", nil, err
	}
	request, err := c.signer.Protect(message)
	if nil != err {
		return "", nil, err
	}
	return header, request, nil
}

// an optional header for reads, empty without a key
func (c *Client) optional() (string, error) {
	if nil == c.signer || nil == c.signer.Key {
		return "", nil
	}
	return c.signer.Header()
}
