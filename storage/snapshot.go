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

// Reader - the read operations shared by snapshots and transactions
type Reader interface {
	Get(*PoolHandle, []byte) ([]byte, error)
	Has(*PoolHandle, []byte) (bool, error)
	Map(*PoolHandle, []byte, func([]byte, []byte) error) error
}

// Snapshot - a consistent read only view of the database
type Snapshot struct {
	snap *leveldb.Snapshot
}

// View - run f against a snapshot taken now
//
// the snapshot is released when f returns
func (s *Store) View(f func(*Snapshot) error) error {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return fault.DatabaseIsNotSet
	}

	snap, err := s.db.GetSnapshot()
	if nil != err {
		return err
	}
	defer snap.Release()

	return f(&Snapshot{snap: snap})
}

// Get - read a value, nil if the key is missing
func (s *Snapshot) Get(p *PoolHandle, key []byte) ([]byte, error) {
	value, err := s.snap.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (s *Snapshot) Has(p *PoolHandle, key []byte) (bool, error) {
	return s.snap.Has(p.prefixKey(key), nil)
}

// Map - run f on every element whose key starts with prefix
func (s *Snapshot) Map(p *PoolHandle, prefix []byte, f func(key []byte, value []byte) error) error {
	iter := s.snap.NewIterator(ldb_util.BytesPrefix(p.prefixKey(prefix)), nil)
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
