// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"

	"github.com/comn-io/comnd/address"
)

// Caller - who is asking
//
// Key is nil for an unauthenticated caller.  Address optionally narrows
// the key's addresses to the one the caller claims to act as.
type Caller struct {
	Key     *btcec.PublicKey
	Address *address.Address
}

// Anonymous - a caller without a token
var Anonymous = Caller{}

// Record - a registered address
type Record struct {
	Address address.Address `json:"address"`
	Name    string          `json:"name,omitempty"`
	Keys    []string        `json:"keys,omitempty"`
	Created time.Time       `json:"created"`
}

// Crate - a container of items
//
// an expired crate is treated as absent
type Crate struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Comment string          `json:"comment,omitempty"`
	Owner   address.Address `json:"owner"`
	Expires *time.Time      `json:"expires,omitempty"`
	Created time.Time       `json:"created"`
}

// Expired - true once the expiry time has passed
func (c *Crate) Expired(now time.Time) bool {
	return nil != c.Expires && !now.Before(*c.Expires)
}

// Grant - access of an address to a crate
type Grant struct {
	Crate   uuid.UUID       `json:"crate"`
	Address address.Address `json:"address"`
	Type    AccessType      `json:"access_type"`
	Expires *time.Time      `json:"expires,omitempty"`
	Created time.Time       `json:"created"`
}

// Expired - true once the expiry time has passed
func (g *Grant) Expired(now time.Time) bool {
	return nil != g.Expires && !now.Before(*g.Expires)
}

// Item - a value stored in a crate
//
// Scope is the token scope that wrote it and Hash the hex SHA-256 of Data
type Item struct {
	Crate     uuid.UUID       `json:"crate"`
	Path      string          `json:"path"`
	MediaType string          `json:"media_type"`
	AddedBy   address.Address `json:"added_by"`
	Scope     string          `json:"scope,omitempty"`
	Hash      string          `json:"sha2_hash,omitempty"`
	Data      json.RawMessage `json:"data"`
	Created   time.Time       `json:"created"`
}

// NewItem - the content of a put request
type NewItem struct {
	Path      string
	MediaType string
	Scope     string
	Hash      []byte
	Data      json.RawMessage
}

// the stored part of a grant, the rest is in the key
type grantValue struct {
	Expires *time.Time `json:"expires,omitempty"`
	Created time.Time  `json:"created"`
}

// key layouts, see the storage package

func nameKey(name string, a address.Address) []byte {
	k := make([]byte, 0, len(name)+1+address.Length)
	k = append(k, name...)
	k = append(k, 0x00)
	return append(k, a[:]...)
}

func namePrefix(name string) []byte {
	return append([]byte(name), 0x00)
}

func keyAddressKey(key *btcec.PublicKey, a address.Address) []byte {
	return append(key.SerializeCompressed(), a[:]...)
}

func addressKeyKey(a address.Address, key *btcec.PublicKey) []byte {
	return append(a.Bytes(), key.SerializeCompressed()...)
}

func crateNameKey(owner address.Address, name string) []byte {
	return append(owner.Bytes(), name...)
}

func grantKey(crate uuid.UUID, a address.Address, t AccessType) []byte {
	k := make([]byte, 0, 2*address.Length+1)
	k = append(k, crate[:]...)
	k = append(k, a[:]...)
	return append(k, byte(t))
}

func grantPrefix(crate uuid.UUID, a address.Address) []byte {
	k := make([]byte, 0, 2*address.Length)
	k = append(k, crate[:]...)
	return append(k, a[:]...)
}

func addressGrantKey(a address.Address, crate uuid.UUID, t AccessType) []byte {
	k := make([]byte, 0, 2*address.Length+1)
	k = append(k, a[:]...)
	k = append(k, crate[:]...)
	return append(k, byte(t))
}

func itemKey(crate uuid.UUID, path string) []byte {
	k := make([]byte, 0, len(crate)+len(path))
	k = append(k, crate[:]...)
	return append(k, path...)
}

// split a grant key: crate ++ address ++ type
func splitGrantKey(k []byte) (uuid.UUID, address.Address, AccessType, bool) {
	if 2*address.Length+1 != len(k) {
		return uuid.UUID{}, address.Address{}, 0, false
	}
	var crate uuid.UUID
	var a address.Address
	copy(crate[:], k[:16])
	copy(a[:], k[16:32])
	return crate, a, AccessType(k[32]), true
}
