// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/comn-io/comnd/fault"
)

// Transaction - an exclusive view of the database
//
// reads see the transaction's own writes; nothing is visible to other
// readers until the transaction commits
type Transaction struct {
	trx *leveldb.Transaction
}

// Update - run f inside an exclusive transaction
//
// the transaction commits only if f returns nil, every other exit
// path (error or panic) discards it.  LevelDB allows one open
// transaction at a time so concurrent calls are serialised.
func (s *Store) Update(f func(*Transaction) error) error {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return fault.DatabaseIsNotSet
	}

	trx, err := s.db.OpenTransaction()
	if nil != err {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Discard()
		}
	}()

	err = f(&Transaction{trx: trx})
	if nil != err {
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	committed = true
	return nil
}

// Get - read a value, nil if the key is missing
func (t *Transaction) Get(p *PoolHandle, key []byte) ([]byte, error) {
	value, err := t.trx.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read the first 8 bytes as big endian uint64
func (t *Transaction) GetN(p *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := t.Get(p, key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	return decodeN(key, buffer)
}

// Has - check if a key exists
func (t *Transaction) Has(p *PoolHandle, key []byte) (bool, error) {
	return t.trx.Has(p.prefixKey(key), nil)
}

// Put - store a key/value pair
func (t *Transaction) Put(p *PoolHandle, key []byte, value []byte) error {
	return t.trx.Put(p.prefixKey(key), value, nil)
}

// PutN - store a big endian uint64
func (t *Transaction) PutN(p *PoolHandle, key []byte, n uint64) error {
	return t.Put(p, key, encodeN(n))
}

// Delete - remove a key
func (t *Transaction) Delete(p *PoolHandle, key []byte) error {
	return t.trx.Delete(p.prefixKey(key), nil)
}

// Map - run f on every element whose key starts with prefix
//
// keys are passed without the pool prefix, stop by returning an error
func (t *Transaction) Map(p *PoolHandle, prefix []byte, f func(key []byte, value []byte) error) error {
	iter := t.trx.NewIterator(ldb_util.BytesPrefix(p.prefixKey(prefix)), nil)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err := f(dataKey, dataValue)
		if nil != err {
			return err
		}
	}
	return iter.Error()
}
