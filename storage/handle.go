// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/comn-io/comnd/fault"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
//
// must not be called from inside an Update callback
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return fault.DatabaseIsNotSet
	}
	return p.store.db.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return fault.DatabaseIsNotSet
	}
	return p.store.db.Delete(p.prefixKey(key), nil)
}

// Get - read a value for a given key
//
// a missing key returns nil with no error
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil, fault.DatabaseIsNotSet
	}
	value, err := p.store.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	return decodeN(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return false, fault.DatabaseIsNotSet
	}
	return p.store.db.Has(p.prefixKey(key), nil)
}

// PutIfAbsent - store the value only if the key does not exist
//
// returns true if the value was stored
func (p *PoolHandle) PutIfAbsent(key []byte, value []byte) (bool, error) {
	return p.ConditionalUpdate(
		key,
		func(current []byte) bool { return nil == current },
		func([]byte) []byte { return value },
	)
}

// ConditionalUpdate - atomically replace the value for a key when the
// predicate holds for its current value
//
// the current value is nil for a missing key; a nil result from
// transform deletes the key
func (p *PoolHandle) ConditionalUpdate(key []byte, predicate func([]byte) bool, transform func([]byte) []byte) (bool, error) {
	applied := false
	err := p.store.Update(func(trx *Transaction) error {
		current, err := trx.Get(p, key)
		if nil != err {
			return err
		}
		if !predicate(current) {
			return nil
		}
		value := transform(current)
		if nil == value {
			err = trx.Delete(p, key)
		} else {
			err = trx.Put(p, key, value)
		}
		if nil != err {
			return err
		}
		applied = true
		return nil
	})
	if nil != err {
		return false, err
	}
	return applied, nil
}

func decodeN(key []byte, buffer []byte) (uint64, bool, error) {
	if len(buffer) < 8 {
		return 0, false, fmt.Errorf("truncated record for: %x", key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

func encodeN(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
