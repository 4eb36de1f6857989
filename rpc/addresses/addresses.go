// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/rpc/ratelimit"
	"github.com/comn-io/comnd/rpc/request"
)

const (
	rateLimitAddress = 200
	rateBurstAddress = 100
)

// Address - type for RPC calls
type Address struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Authenticator auth.Authenticator
	Registry      access.Registry
}

// New - create the address service
func New(log *logger.L, authenticator auth.Authenticator, registry access.Registry) *Address {
	return &Address{
		Log:           log,
		Limiter:       ratelimit.New(rateLimitAddress, rateBurstAddress),
		Authenticator: authenticator,
		Registry:      registry,
	}
}

// ---

// RegisterArguments - a protected request carrying RegisterMessage
type RegisterArguments struct {
	Authorization string                 `json:"authorization"`
	Request       *auth.ProtectedRequest `json:"request"`
}

// RegisterMessage - the signed body of a registration
type RegisterMessage struct {
	Name string `json:"name"`
}

// RecordReply - one address record
type RecordReply struct {
	Record *access.Record `json:"record"`
}

// Register - mint an address controlled by the token's key
func (a *Address) Register(arguments *RegisterArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	_, identity, err := request.Required(a.Authenticator, arguments.Authorization, nil)
	if nil != err {
		return err
	}

	var message RegisterMessage
	err = request.Decode(a.Authenticator, identity, arguments.Request, &message)
	if nil != err {
		return err
	}

	record, err := a.Registry.Register(identity.PublicKey, message.Name)
	if nil != err {
		a.Log.Debugf("register error: %s", err)
		return err
	}

	reply.Record = record
	return nil
}

// ---

// AddKeyArguments - a protected request carrying AddKeyMessage
type AddKeyArguments struct {
	Authorization string                 `json:"authorization"`
	Request       *auth.ProtectedRequest `json:"request"`
}

// AddKeyMessage - the address to extend and the hex of the new key
type AddKeyMessage struct {
	Address address.Address `json:"address"`
	Key     string          `json:"key"`
}

// AddKey - give another key control of an address the caller controls
func (a *Address) AddKey(arguments *AddKeyArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	caller, identity, err := request.Required(a.Authenticator, arguments.Authorization, nil)
	if nil != err {
		return err
	}

	var message AddKeyMessage
	err = request.Decode(a.Authenticator, identity, arguments.Request, &message)
	if nil != err {
		return err
	}

	key, err := auth.ParsePublicKeyHex(message.Key)
	if nil != err {
		return err
	}

	err = a.Registry.AddKey(caller, message.Address, key)
	if nil != err {
		a.Log.Debugf("add key: %s  error: %s", message.Address, err)
		return err
	}

	records, err := a.Registry.Lookup(access.AddressFilter(message.Address))
	if nil != err {
		return err
	}
	if 0 == len(records) {
		return fault.AddressNotFound
	}
	reply.Record = &records[0]
	return nil
}

// ---

// LookupArguments - exactly one selector is used: address, then name,
// then key
type LookupArguments struct {
	Address *address.Address `json:"address,omitempty"`
	Name    string           `json:"name,omitempty"`
	Key     string           `json:"key,omitempty"`
}

// LookupReply - matching records
type LookupReply struct {
	Records []access.Record `json:"records"`
}

// Lookup - find address records
func (a *Address) Lookup(arguments *LookupArguments, reply *LookupReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	var filter access.Filter
	if nil == arguments.Address && "" == arguments.Name && "" != arguments.Key {
		key, err := auth.ParsePublicKeyHex(arguments.Key)
		if nil != err {
			return err
		}
		filter = access.KeyFilter(key)
	} else {
		f, err := access.NewFilter(arguments.Address, arguments.Name)
		if nil != err {
			return err
		}
		filter = f
	}

	records, err := a.Registry.Lookup(filter)
	if nil != err {
		return err
	}

	reply.Records = records
	return nil
}
