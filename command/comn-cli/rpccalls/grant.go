// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/rpc/crates"
)

// GrantData - one grant on a crate
//
// As is the address the caller acts for, nil for any it controls
type GrantData struct {
	As      *address.Address
	Crate   uuid.UUID
	Address address.Address
	Type    access.AccessType
	Expires *time.Time
}

func (c *Client) protected(as *address.Address, message interface{}) (*crates.ProtectedArguments, error) {
	header, request, err := c.signed(message)
	if nil != err {
		return nil, err
	}
	return &crates.ProtectedArguments{
		Authorization: header,
		As:            as,
		Request:       request,
	}, nil
}

// Grant - give an address access to a crate
func (c *Client) Grant(data *GrantData) (*crates.GrantReply, error) {
	arguments, err := c.protected(data.As, &crates.GrantMessage{
		Crate:   data.Crate,
		Address: data.Address,
		Type:    data.Type,
		Expires: data.Expires,
	})
	if nil != err {
		return nil, err
	}

	var reply crates.GrantReply
	if err := c.call("Crate.Grant", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Revoke - remove an address's access to a crate
func (c *Client) Revoke(data *GrantData) (*crates.RevokeReply, error) {
	arguments, err := c.protected(data.As, &crates.GrantMessage{
		Crate:   data.Crate,
		Address: data.Address,
		Type:    data.Type,
	})
	if nil != err {
		return nil, err
	}

	var reply crates.RevokeReply
	if err := c.call("Crate.Revoke", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CrateData - a crate to create
type CrateData struct {
	Owner   address.Address
	Name    string
	Comment string
	Expires *time.Time
}

// CreateCrate - a new crate owned by an address the signer controls
func (c *Client) CreateCrate(data *CrateData) (*crates.CrateReply, error) {
	arguments, err := c.protected(nil, &crates.CreateMessage{
		Owner:   data.Owner,
		Name:    data.Name,
		Comment: data.Comment,
		Expires: data.Expires,
	})
	if nil != err {
		return nil, err
	}

	var reply crates.CrateReply
	if err := c.call("Crate.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ItemData - an item to store
type ItemData struct {
	As        *address.Address
	Crate     uuid.UUID
	Path      string
	MediaType string
	Data      json.RawMessage
}

// PutItem - store an item, the signer's scopes must start with crate_write
//
// the data is hashed in the form it takes inside the signed message
func (c *Client) PutItem(data *ItemData) (*crates.ItemReply, error) {
	encoded, err := json.Marshal(data.Data)
	if nil != err {
		return nil, err
	}
	digest := sha256.Sum256(encoded)

	arguments, err := c.protected(data.As, &crates.PutItemMessage{
		Crate:     data.Crate,
		Path:      data.Path,
		MediaType: data.MediaType,
		Sha2Hash:  hex.EncodeToString(digest[:]),
		Data:      json.RawMessage(encoded),
	})
	if nil != err {
		return nil, err
	}

	var reply crates.ItemReply
	if err := c.call("Crate.PutItem", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
