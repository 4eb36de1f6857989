// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - the authentication steps shared by every RPC
package request

import (
	"encoding/json"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
)

// CrateWrite - the token scope that allows storing crate items
const CrateWrite = "crate_write"

// Caller - resolve an optional authorization header
//
// no header gives the anonymous caller, who cannot claim an address
func Caller(authenticator auth.Authenticator, header string, claimed *address.Address) (access.Caller, error) {
	if "" == header {
		if nil != claimed {
			return access.Anonymous, fault.MissingToken
		}
		return access.Anonymous, nil
	}
	caller, _, err := Required(authenticator, header, claimed)
	return caller, err
}

// Required - resolve an authorization header that must be present
func Required(authenticator auth.Authenticator, header string, claimed *address.Address) (access.Caller, *auth.Identity, error) {
	if "" == header {
		return access.Anonymous, nil, fault.MissingToken
	}
	identity, err := authenticator.Authenticate(header)
	if nil != err {
		return access.Anonymous, nil, err
	}
	caller := access.Caller{
		Key:     identity.PublicKey,
		Address: claimed,
	}
	return caller, identity, nil
}

// Decode - verify a protected request and decode its JSON message
func Decode(authenticator auth.Authenticator, identity *auth.Identity, protected *auth.ProtectedRequest, body interface{}) error {
	message, err := authenticator.Unwrap(identity, protected)
	if nil != err {
		return err
	}
	err = json.Unmarshal([]byte(message), body)
	if nil != err {
		return fault.InvalidRequest
	}
	return nil
}

// Scope - require the first scope of a token and return the scope
// that follows it, empty when there is none
func Scope(identity *auth.Identity, required string) (string, error) {
	if nil == identity || 0 == len(identity.Scopes) || required != identity.Scopes[0] {
		return "", fault.Forbidden
	}
	if len(identity.Scopes) < 2 {
		return "", nil
	}
	return identity.Scopes[1], nil
}
