// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/storage"
)

const (
	defaultMaximumItem   = 100000
	maximumNameLength    = 256
	maximumCommentLength = 4096
	maximumPathLength    = 1024
	maximumListCount     = 100
)

// Registry - address and key registration
type Registry interface {
	Register(*btcec.PublicKey, string) (*Record, error)
	AddKey(Caller, address.Address, *btcec.PublicKey) error
	Lookup(Filter) ([]Record, error)
	Controls(*btcec.PublicKey, address.Address) (bool, error)
	Addresses(*btcec.PublicKey) ([]address.Address, error)
}

// Authority - access to crates and their items
type Authority interface {
	CreateCrate(Caller, address.Address, string, string, *time.Time) (*Crate, error)
	Crate(uuid.UUID) (*Crate, error)
	CratesFor(Caller, Levels) ([]Crate, error)
	Check(Caller, uuid.UUID, Levels) ([]Grant, error)
	Grants(Caller, uuid.UUID) ([]Grant, error)
	Grant(Caller, uuid.UUID, address.Address, AccessType, *time.Time) (*Grant, error)
	Revoke(Caller, uuid.UUID, address.Address, AccessType) error
	PutItem(Caller, uuid.UUID, *NewItem) (*Item, error)
	Item(Caller, uuid.UUID, string) (*Item, error)
	Items(Caller, uuid.UUID, string, int) ([]Item, error)
}

// Configuration - resolver settings
type Configuration struct {
	MaximumItem int
	Clock       func() time.Time
}

// Resolver - maps identities to addresses and addresses to grants
type Resolver struct {
	log         *logger.L
	store       *storage.Store
	maximumItem int
	now         func() time.Time
}

// New - create a resolver over a store
func New(log *logger.L, store *storage.Store, configuration Configuration) *Resolver {
	maximumItem := configuration.MaximumItem
	if maximumItem <= 0 {
		maximumItem = defaultMaximumItem
	}
	now := configuration.Clock
	if nil == now {
		now = time.Now
	}
	return &Resolver{
		log:         log,
		store:       store,
		maximumItem: maximumItem,
		now:         now,
	}
}

// the addresses a caller may act as:
// its key's addresses, Registered for any key and Public for everyone
func (r *Resolver) candidates(rd storage.Reader, caller Caller) ([]address.Address, error) {
	result := []address.Address{address.Public}
	if nil == caller.Key {
		return result, nil
	}
	result = append(result, address.Registered)

	if nil != caller.Address {
		ok, err := rd.Has(r.store.Pool.KeyAddresses, keyAddressKey(caller.Key, *caller.Address))
		if nil != err {
			return nil, err
		}
		if !ok {
			return nil, fault.NotController
		}
		return append(result, *caller.Address), nil
	}

	owned, err := r.addresses(rd, caller.Key)
	if nil != err {
		return nil, err
	}
	return append(result, owned...), nil
}

// grants on a crate matching any candidate and level, expired grants
// never match
func (r *Resolver) check(rd storage.Reader, caller Caller, crate uuid.UUID, levels Levels) ([]Grant, error) {
	_, err := r.readCrate(rd, crate)
	if nil != err {
		return nil, err
	}

	candidates, err := r.candidates(rd, caller)
	if nil != err {
		return nil, err
	}

	now := r.now()
	matches := make([]Grant, 0, 4)
	for _, a := range candidates {
		err := rd.Map(r.store.Pool.Grants, grantPrefix(crate, a), func(key []byte, value []byte) error {
			g, err := decodeGrant(key, value)
			if nil != err {
				return err
			}
			if levels.Has(g.Type) && !g.Expired(now) {
				matches = append(matches, *g)
			}
			return nil
		})
		if nil != err {
			return nil, err
		}
	}

	if 0 == len(matches) {
		return nil, fault.Forbidden
	}
	return matches, nil
}

// Check - the caller's grants on a crate that satisfy the levels
//
// fails with Forbidden when there are none
func (r *Resolver) Check(caller Caller, crate uuid.UUID, levels Levels) ([]Grant, error) {
	var grants []Grant
	err := r.store.View(func(snap *storage.Snapshot) error {
		var err error
		grants, err = r.check(snap, caller, crate, levels)
		return err
	})
	return grants, err
}

func decodeGrant(key []byte, value []byte) (*Grant, error) {
	crate, a, t, ok := splitGrantKey(key)
	if !ok {
		return nil, fault.CorruptRecord
	}
	var v grantValue
	err := json.Unmarshal(value, &v)
	if nil != err {
		return nil, err
	}
	return &Grant{
		Crate:   crate,
		Address: a,
		Type:    t,
		Expires: v.Expires,
		Created: v.Created,
	}, nil
}
