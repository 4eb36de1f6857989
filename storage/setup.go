// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/comn-io/comnd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Addresses     *PoolHandle `prefix:"A"`
	AddressNames  *PoolHandle `prefix:"M"`
	KeyAddresses  *PoolHandle `prefix:"K"`
	AddressKeys   *PoolHandle `prefix:"L"`
	Crates        *PoolHandle `prefix:"C"`
	CrateNames    *PoolHandle `prefix:"E"`
	Grants        *PoolHandle `prefix:"G"`
	AddressGrants *PoolHandle `prefix:"H"`
	Items         *PoolHandle `prefix:"I"`
	Balances      *PoolHandle `prefix:"B"`
	Nonces        *PoolHandle `prefix:"U"`
	TestData      *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its pools
type Store struct {
	sync.RWMutex
	log  *logger.L
	db   *leveldb.DB
	Pool pools
}

// Open - open up the database file
func Open(log *logger.L, name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	log.Infof("opened database: %q  read only: %t", name, readOnly)
	return newStore(log, db, readOnly)
}

// OpenMemory - a database that lives only as long as the process
func OpenMemory(log *logger.L) (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore(log, db, ReadWrite)
}

func newStore(log *logger.L, db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return nil, fault.IncompatibleVersion
	}

	if 0 == version {
		if readOnly {
			log.Critical("read only database has no version")
			return nil, fault.IncompatibleVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			return nil, err
		}
	} else if version < currentVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentVersion)
		return nil, fault.IncompatibleVersion
	}

	s := &Store{
		log: log,
		db:  db,
	}

	err = s.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pools struct and create a handle from its prefix tag
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
