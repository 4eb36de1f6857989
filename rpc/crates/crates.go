// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crates

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/rpc/ratelimit"
	"github.com/comn-io/comnd/rpc/request"
)

const (
	rateLimitCrate = 200
	rateBurstCrate = 100
)

// limit for count
const maximumItemCount = 100

// Crate - type for RPC calls
//
// every request may name the address the caller acts as in As, which
// narrows the addresses of the token's key to that one
type Crate struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Authenticator auth.Authenticator
	Authority     access.Authority
}

// New - create the crate service
func New(log *logger.L, authenticator auth.Authenticator, authority access.Authority) *Crate {
	return &Crate{
		Log:           log,
		Limiter:       ratelimit.New(rateLimitCrate, rateBurstCrate),
		Authenticator: authenticator,
		Authority:     authority,
	}
}

// ProtectedArguments - arguments of the calls that change a crate
type ProtectedArguments struct {
	Authorization string                 `json:"authorization"`
	As            *address.Address       `json:"as,omitempty"`
	Request       *auth.ProtectedRequest `json:"request"`
}

// decode the signed message of a mutating call
func (c *Crate) protected(arguments *ProtectedArguments, message interface{}) (access.Caller, *auth.Identity, error) {
	caller, identity, err := request.Required(c.Authenticator, arguments.Authorization, arguments.As)
	if nil != err {
		return caller, nil, err
	}
	err = request.Decode(c.Authenticator, identity, arguments.Request, message)
	return caller, identity, err
}

// ---

// CreateMessage - the signed body of a create request
type CreateMessage struct {
	Owner   address.Address `json:"owner"`
	Name    string          `json:"name"`
	Comment string          `json:"comment,omitempty"`
	Expires *time.Time      `json:"expires,omitempty"`
}

// CrateReply - one crate
type CrateReply struct {
	Crate *access.Crate `json:"crate"`
}

// Create - make a crate owned by an address the caller controls
func (c *Crate) Create(arguments *ProtectedArguments, reply *CrateReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	var message CreateMessage
	caller, _, err := c.protected(arguments, &message)
	if nil != err {
		return err
	}

	crate, err := c.Authority.CreateCrate(caller, message.Owner, message.Name, message.Comment, message.Expires)
	if nil != err {
		c.Log.Debugf("create crate: %q  error: %s", message.Name, err)
		return err
	}
	reply.Crate = crate
	return nil
}

// ---

// ListArguments - crates where the caller holds any of Access,
// all types when empty
type ListArguments struct {
	Authorization string              `json:"authorization"`
	As            *address.Address    `json:"as,omitempty"`
	Access        []access.AccessType `json:"access,omitempty"`
}

// ListReply - matching crates
type ListReply struct {
	Crates []access.Crate `json:"crates"`
}

// List - crates visible to the caller
func (c *Crate) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := request.Caller(c.Authenticator, arguments.Authorization, arguments.As)
	if nil != err {
		return err
	}

	levels := access.Read
	if 0 != len(arguments.Access) {
		levels = access.LevelsOf(arguments.Access...)
	}

	crates, err := c.Authority.CratesFor(caller, levels)
	if nil != err {
		return err
	}
	reply.Crates = crates
	return nil
}

// ---

// GrantsArguments - the crate whose grants are listed
type GrantsArguments struct {
	Authorization string           `json:"authorization"`
	As            *address.Address `json:"as,omitempty"`
	Crate         uuid.UUID        `json:"crate"`
}

// GrantsReply - grants of a crate
type GrantsReply struct {
	Grants []access.Grant `json:"grants"`
}

// Grants - everyone with access to a crate
func (c *Crate) Grants(arguments *GrantsArguments, reply *GrantsReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := request.Caller(c.Authenticator, arguments.Authorization, arguments.As)
	if nil != err {
		return err
	}

	grants, err := c.Authority.Grants(caller, arguments.Crate)
	if nil != err {
		return err
	}
	reply.Grants = grants
	return nil
}

// ---

// GrantMessage - the signed body of grant and revoke requests
//
// Expires is ignored by revoke
type GrantMessage struct {
	Crate   uuid.UUID         `json:"crate"`
	Address address.Address   `json:"address"`
	Type    access.AccessType `json:"access_type"`
	Expires *time.Time        `json:"expires,omitempty"`
}

// GrantReply - the stored grant
type GrantReply struct {
	Grant *access.Grant `json:"grant"`
}

// Grant - give an address access to a crate
func (c *Crate) Grant(arguments *ProtectedArguments, reply *GrantReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	var message GrantMessage
	caller, _, err := c.protected(arguments, &message)
	if nil != err {
		return err
	}

	grant, err := c.Authority.Grant(caller, message.Crate, message.Address, message.Type, message.Expires)
	if nil != err {
		c.Log.Debugf("grant: %s  crate: %s  error: %s", message.Address, message.Crate, err)
		return err
	}
	reply.Grant = grant
	return nil
}

// RevokeReply - what was removed
type RevokeReply struct {
	Crate   uuid.UUID         `json:"crate"`
	Address address.Address   `json:"address"`
	Type    access.AccessType `json:"access_type"`
}

// Revoke - remove an address's access to a crate
func (c *Crate) Revoke(arguments *ProtectedArguments, reply *RevokeReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	var message GrantMessage
	caller, _, err := c.protected(arguments, &message)
	if nil != err {
		return err
	}

	err = c.Authority.Revoke(caller, message.Crate, message.Address, message.Type)
	if nil != err {
		c.Log.Debugf("revoke: %s  crate: %s  error: %s", message.Address, message.Crate, err)
		return err
	}
	reply.Crate = message.Crate
	reply.Address = message.Address
	reply.Type = message.Type
	return nil
}

// ---

// PutItemMessage - the signed body of a put request
//
// Sha2Hash is the hex SHA-256 of the data bytes as sent
type PutItemMessage struct {
	Crate     uuid.UUID       `json:"crate"`
	Path      string          `json:"path"`
	MediaType string          `json:"media_type"`
	Sha2Hash  string          `json:"sha2_hash"`
	Data      json.RawMessage `json:"data"`
}

// ItemReply - one item
type ItemReply struct {
	Item *access.Item `json:"item"`
}

// PutItem - store an item, replacing any at the same path
//
// the token's first scope must be crate_write, the scope after it is
// recorded on the item
func (c *Crate) PutItem(arguments *ProtectedArguments, reply *ItemReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	var message PutItemMessage
	caller, identity, err := c.protected(arguments, &message)
	if nil != err {
		return err
	}

	scope, err := request.Scope(identity, request.CrateWrite)
	if nil != err {
		return err
	}

	hash, err := hex.DecodeString(message.Sha2Hash)
	if nil != err {
		return fault.InvalidItemHash
	}

	item, err := c.Authority.PutItem(caller, message.Crate, &access.NewItem{
		Path:      message.Path,
		MediaType: message.MediaType,
		Scope:     scope,
		Hash:      hash,
		Data:      message.Data,
	})
	if nil != err {
		c.Log.Debugf("put item: %s%s  error: %s", message.Crate, message.Path, err)
		return err
	}
	reply.Item = item
	return nil
}

// ---

// ItemArguments - one item by path
type ItemArguments struct {
	Authorization string           `json:"authorization"`
	As            *address.Address `json:"as,omitempty"`
	Crate         uuid.UUID        `json:"crate"`
	Path          string           `json:"path"`
}

// Item - read an item
func (c *Crate) Item(arguments *ItemArguments, reply *ItemReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := request.Caller(c.Authenticator, arguments.Authorization, arguments.As)
	if nil != err {
		return err
	}

	item, err := c.Authority.Item(caller, arguments.Crate, arguments.Path)
	if nil != err {
		return err
	}
	reply.Item = item
	return nil
}

// ---

// ItemsArguments - a page of items with paths after Start
type ItemsArguments struct {
	Authorization string           `json:"authorization"`
	As            *address.Address `json:"as,omitempty"`
	Crate         uuid.UUID        `json:"crate"`
	Start         string           `json:"start"`
	Count         int              `json:"count"`
}

// ItemsReply - items with the path to continue from
type ItemsReply struct {
	Items     []access.Item `json:"items"`
	NextStart string        `json:"nextStart"`
}

// Items - list the items of a crate in path order
func (c *Crate) Items(arguments *ItemsArguments, reply *ItemsReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumItemCount); nil != err {
		return err
	}

	caller, err := request.Caller(c.Authenticator, arguments.Authorization, arguments.As)
	if nil != err {
		return err
	}

	items, err := c.Authority.Items(caller, arguments.Crate, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Items = items
	reply.NextStart = arguments.Start
	if 0 != len(items) {
		reply.NextStart = items[len(items)-1].Path
	}
	return nil
}
