// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
)

// FilterKind - how an address lookup selects records
type FilterKind int

// the lookup kinds, each is a fixed scan of one index
const (
	ByAddress FilterKind = iota + 1
	ByName
	ByKey
)

// Filter - selection criteria for Lookup
type Filter struct {
	kind    FilterKind
	address address.Address
	name    string
	key     *btcec.PublicKey
}

// AddressFilter - the record of one address
func AddressFilter(a address.Address) Filter {
	return Filter{kind: ByAddress, address: a}
}

// NameFilter - all records registered under a name
func NameFilter(name string) Filter {
	return Filter{kind: ByName, name: name}
}

// KeyFilter - all records a key controls
func KeyFilter(key *btcec.PublicKey) Filter {
	return Filter{kind: ByKey, key: key}
}

// NewFilter - choose the filter from optional request fields
//
// an address takes precedence over a name, neither is an error
func NewFilter(a *address.Address, name string) (Filter, error) {
	if nil != a {
		return AddressFilter(*a), nil
	}
	if "" != name {
		return NameFilter(name), nil
	}
	return Filter{}, fault.MissingFilter
}

// Kind - the selected variant
func (f Filter) Kind() FilterKind {
	return f.kind
}
