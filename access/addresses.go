// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/storage"
)

// attempts to find an unused random address
const mintAttempts = 10

// Register - mint a new address for a key
func (r *Resolver) Register(key *btcec.PublicKey, name string) (*Record, error) {
	if nil == key {
		return nil, fault.InvalidPublicKey
	}
	err := validateName(name, true)
	if nil != err {
		return nil, err
	}

	var record *Record
	err = r.store.Update(func(trx *storage.Transaction) error {
		for i := 0; i < mintAttempts; i += 1 {
			a := address.Random()
			if address.IsReserved(a) {
				continue
			}
			found, err := trx.Has(r.store.Pool.Addresses, a[:])
			if nil != err {
				return err
			}
			if found {
				continue
			}

			record, err = r.createAddress(trx, a, name)
			if nil != err {
				return err
			}
			return r.attachKey(trx, record, key)
		}
		return fault.AlreadyRegistered
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("registered: %s  name: %q", record.Address, name)
	return record, nil
}

// CreateAddress - register a specific address without any key
//
// used for the treasury and by tests, never for Public or Registered
func (r *Resolver) CreateAddress(a address.Address, name string) (*Record, error) {
	if address.IsWellKnown(a) {
		return nil, fault.AlreadyRegistered
	}
	err := validateName(name, true)
	if nil != err {
		return nil, err
	}

	var record *Record
	err = r.store.Update(func(trx *storage.Transaction) error {
		found, err := trx.Has(r.store.Pool.Addresses, a[:])
		if nil != err {
			return err
		}
		if found {
			return fault.AlreadyRegistered
		}
		record, err = r.createAddress(trx, a, name)
		return err
	})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// AttachKey - give a key control of an existing address
func (r *Resolver) AttachKey(a address.Address, key *btcec.PublicKey) error {
	if nil == key {
		return fault.InvalidPublicKey
	}
	return r.store.Update(func(trx *storage.Transaction) error {
		record, err := r.record(trx, a)
		if nil != err {
			return err
		}
		return r.attachKey(trx, record, key)
	})
}

// AddKey - a controller of an address gives another key control of it
func (r *Resolver) AddKey(caller Caller, a address.Address, key *btcec.PublicKey) error {
	if nil == caller.Key {
		return fault.MissingToken
	}
	if nil == key {
		return fault.InvalidPublicKey
	}
	return r.store.Update(func(trx *storage.Transaction) error {
		ok, err := trx.Has(r.store.Pool.KeyAddresses, keyAddressKey(caller.Key, a))
		if nil != err {
			return err
		}
		if !ok {
			return fault.NotController
		}
		record, err := r.record(trx, a)
		if nil != err {
			return err
		}
		return r.attachKey(trx, record, key)
	})
}

// Controls - true if the key is one of the address's keys
func (r *Resolver) Controls(key *btcec.PublicKey, a address.Address) (bool, error) {
	if nil == key {
		return false, nil
	}
	return r.store.Pool.KeyAddresses.Has(keyAddressKey(key, a))
}

// Exists - true for registered and reserved addresses
func (r *Resolver) Exists(a address.Address) (bool, error) {
	if address.IsWellKnown(a) {
		return true, nil
	}
	return r.store.Pool.Addresses.Has(a[:])
}

// Addresses - all addresses a key controls, in address order
func (r *Resolver) Addresses(key *btcec.PublicKey) ([]address.Address, error) {
	var result []address.Address
	err := r.store.View(func(snap *storage.Snapshot) error {
		var err error
		result, err = r.addresses(snap, key)
		return err
	})
	return result, err
}

func (r *Resolver) addresses(rd storage.Reader, key *btcec.PublicKey) ([]address.Address, error) {
	result := make([]address.Address, 0, 4)
	err := rd.Map(r.store.Pool.KeyAddresses, key.SerializeCompressed(), func(k []byte, _ []byte) error {
		a, err := address.FromBytes(k[auth.PublicKeyLength:])
		if nil != err {
			return err
		}
		result = append(result, a)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Lookup - address records selected by a filter
func (r *Resolver) Lookup(filter Filter) ([]Record, error) {
	var result []Record
	err := r.store.View(func(snap *storage.Snapshot) error {
		var addresses []address.Address
		var err error

		switch filter.kind {
		case ByAddress:
			addresses = []address.Address{filter.address}

		case ByName:
			if "" == filter.name {
				return fault.MissingFilter
			}
			err = snap.Map(r.store.Pool.AddressNames, namePrefix(filter.name), func(k []byte, _ []byte) error {
				a, err := address.FromBytes(k[len(filter.name)+1:])
				if nil != err {
					return err
				}
				addresses = append(addresses, a)
				return nil
			})

		case ByKey:
			if nil == filter.key {
				return fault.MissingFilter
			}
			addresses, err = r.addresses(snap, filter.key)

		default:
			return fault.MissingFilter
		}
		if nil != err {
			return err
		}

		for _, a := range addresses {
			record, err := r.record(snap, a)
			if nil != err {
				return err
			}
			result = append(result, *record)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	if 0 == len(result) {
		return nil, fault.AddressNotFound
	}
	return result, nil
}

// read an address record and fill in its keys
func (r *Resolver) record(rd storage.Reader, a address.Address) (*Record, error) {
	buffer, err := rd.Get(r.store.Pool.Addresses, a[:])
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.AddressNotFound
	}

	var record Record
	err = json.Unmarshal(buffer, &record)
	if nil != err {
		return nil, err
	}

	record.Keys = make([]string, 0, 2)
	err = rd.Map(r.store.Pool.AddressKeys, a[:], func(k []byte, _ []byte) error {
		key, err := auth.ParsePublicKey(k[address.Length:])
		if nil != err {
			return err
		}
		record.Keys = append(record.Keys, auth.PublicKeyHex(key))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return &record, nil
}

func (r *Resolver) createAddress(trx *storage.Transaction, a address.Address, name string) (*Record, error) {
	record := &Record{
		Address: a,
		Name:    name,
		Created: r.now().UTC(),
	}
	buffer, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.Addresses, a[:], buffer)
	if nil != err {
		return nil, err
	}
	if "" != name {
		err = trx.Put(r.store.Pool.AddressNames, nameKey(name, a), []byte{})
		if nil != err {
			return nil, err
		}
	}
	return record, nil
}

func (r *Resolver) attachKey(trx *storage.Transaction, record *Record, key *btcec.PublicKey) error {
	timestamp := uint64(r.now().UnixNano())
	err := trx.PutN(r.store.Pool.KeyAddresses, keyAddressKey(key, record.Address), timestamp)
	if nil != err {
		return err
	}
	err = trx.PutN(r.store.Pool.AddressKeys, addressKeyKey(record.Address, key), timestamp)
	if nil != err {
		return err
	}
	record.Keys = append(record.Keys, auth.PublicKeyHex(key))
	return nil
}

// names are optional for addresses but required for crates
func validateName(name string, optional bool) error {
	if "" == name && optional {
		return nil
	}
	if "" == name || len(name) > maximumNameLength || strings.ContainsRune(name, 0) {
		return fault.InvalidName
	}
	return nil
}
