// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/rpc/addresses"
)

// LookupData - any one of the fields selects the records
type LookupData struct {
	Address *address.Address
	Name    string
	Key     string
}

// Lookup - find address records
func (c *Client) Lookup(data *LookupData) (*addresses.LookupReply, error) {
	arguments := &addresses.LookupArguments{
		Address: data.Address,
		Name:    data.Name,
		Key:     data.Key,
	}

	var reply addresses.LookupReply
	if err := c.call("Address.Lookup", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Register - create a new address controlled by the signer's key
func (c *Client) Register(name string) (*addresses.RecordReply, error) {
	header, request, err := c.signed(&addresses.RegisterMessage{Name: name})
	if nil != err {
		return nil, err
	}

	arguments := &addresses.RegisterArguments{
		Authorization: header,
		Request:       request,
	}

	var reply addresses.RecordReply
	if err := c.call("Address.Register", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddKey - attach another hex public key to an address
func (c *Client) AddKey(a address.Address, key string) (*addresses.RecordReply, error) {
	header, request, err := c.signed(&addresses.AddKeyMessage{Address: a, Key: key})
	if nil != err {
		return nil, err
	}

	arguments := &addresses.AddKeyArguments{
		Authorization: header,
		Request:       request,
	}

	var reply addresses.RecordReply
	if err := c.call("Address.AddKey", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
