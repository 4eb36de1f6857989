// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/storage"
)

// CreateCrate - a new crate owned by an address the caller controls
//
// a crate with an expiry disappears with all its grants and items once
// that time has passed, and its name may then be used again
func (r *Resolver) CreateCrate(caller Caller, owner address.Address, name string, comment string, expires *time.Time) (*Crate, error) {
	if nil == caller.Key {
		return nil, fault.MissingToken
	}
	err := validateName(name, false)
	if nil != err {
		return nil, err
	}
	if len(comment) > maximumCommentLength {
		return nil, fault.InvalidRequest
	}
	if nil != expires && !expires.After(r.now()) {
		return nil, fault.InvalidRequest
	}

	var crate *Crate
	err = r.store.Update(func(trx *storage.Transaction) error {
		ok, err := trx.Has(r.store.Pool.KeyAddresses, keyAddressKey(caller.Key, owner))
		if nil != err {
			return err
		}
		if !ok {
			return fault.NotController
		}
		crate, err = r.createCrate(trx, owner, name, comment, expires)
		return err
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("crate: %s  name: %q  owner: %s", crate.ID, name, owner)
	return crate, nil
}

// SystemCrate - find or create a crate owned by a reserved address
// that a single reader may read
func (r *Resolver) SystemCrate(owner address.Address, name string, reader address.Address) (uuid.UUID, error) {
	id := uuid.UUID{}
	err := r.store.Update(func(trx *storage.Transaction) error {
		existing, err := trx.Get(r.store.Pool.CrateNames, crateNameKey(owner, name))
		if nil != err {
			return err
		}
		if nil != existing {
			copy(id[:], existing)
			return nil
		}

		crate, err := r.createCrate(trx, owner, name, "", nil)
		if nil != err {
			return err
		}
		id = crate.ID
		_, err = r.putGrant(trx, crate.ID, reader, Reader, nil)
		return err
	})
	return id, err
}

// FindCrate - the crate of an owner by name
func (r *Resolver) FindCrate(owner address.Address, name string) (uuid.UUID, error) {
	id := uuid.UUID{}
	buffer, err := r.store.Pool.CrateNames.Get(crateNameKey(owner, name))
	if nil != err {
		return id, err
	}
	if nil == buffer {
		return id, fault.CrateNotFound
	}
	copy(id[:], buffer)
	return id, nil
}

// Crate - read a crate record
func (r *Resolver) Crate(id uuid.UUID) (*Crate, error) {
	var crate *Crate
	err := r.store.View(func(snap *storage.Snapshot) error {
		var err error
		crate, err = r.readCrate(snap, id)
		return err
	})
	if nil != err {
		return nil, err
	}
	return crate, nil
}

// CratesFor - crates on which the caller holds any of the levels
func (r *Resolver) CratesFor(caller Caller, levels Levels) ([]Crate, error) {
	result := make([]Crate, 0, 8)
	err := r.store.View(func(snap *storage.Snapshot) error {
		candidates, err := r.candidates(snap, caller)
		if nil != err {
			return err
		}

		now := r.now()
		seen := make(map[uuid.UUID]struct{})
		for _, a := range candidates {
			err := snap.Map(r.store.Pool.AddressGrants, a[:], func(k []byte, _ []byte) error {
				if 2*address.Length+1 != len(k) {
					return fault.CorruptRecord
				}
				id := uuid.UUID{}
				copy(id[:], k[address.Length:2*address.Length])
				t := AccessType(k[2*address.Length])
				if _, ok := seen[id]; ok || !levels.Has(t) {
					return nil
				}

				g, err := r.grant(snap, id, a, t)
				if nil != err || nil == g || g.Expired(now) {
					return err
				}

				crate, err := r.readCrate(snap, id)
				if fault.CrateNotFound == err {
					return nil
				}
				if nil != err {
					return err
				}
				seen[id] = struct{}{}
				result = append(result, *crate)
				return nil
			})
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Grants - unexpired grants on a crate, the caller needs any access
func (r *Resolver) Grants(caller Caller, crate uuid.UUID) ([]Grant, error) {
	result := make([]Grant, 0, 8)
	err := r.store.View(func(snap *storage.Snapshot) error {
		_, err := r.check(snap, caller, crate, Read)
		if nil != err {
			return err
		}
		now := r.now()
		return snap.Map(r.store.Pool.Grants, crate[:], func(key []byte, value []byte) error {
			g, err := decodeGrant(key, value)
			if nil != err {
				return err
			}
			if !g.Expired(now) {
				result = append(result, *g)
			}
			return nil
		})
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Grant - add or replace a grant, the caller must be an Owner or Admin
//
// Owner grants cannot carry an expiry so a crate never loses its last
// owner by time alone
func (r *Resolver) Grant(caller Caller, crate uuid.UUID, target address.Address, t AccessType, expires *time.Time) (*Grant, error) {
	if !t.Valid() {
		return nil, fault.InvalidAccessType
	}
	if nil != expires {
		if Owner == t {
			return nil, fault.OwnerExpiry
		}
		if !expires.After(r.now()) {
			return nil, fault.InvalidRequest
		}
	}

	var g *Grant
	err := r.store.Update(func(trx *storage.Transaction) error {
		_, err := r.check(trx, caller, crate, Manage)
		if nil != err {
			return err
		}

		if !address.IsWellKnown(target) {
			found, err := trx.Has(r.store.Pool.Addresses, target[:])
			if nil != err {
				return err
			}
			if !found {
				return fault.AddressNotFound
			}
		}

		g, err = r.putGrant(trx, crate, target, t, expires)
		return err
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("grant: %s  %s: %s", crate, t, target)
	return g, nil
}

// Revoke - remove a grant, the caller must be an Owner or Admin
//
// the last unexpired Owner grant of a crate cannot be removed
func (r *Resolver) Revoke(caller Caller, crate uuid.UUID, target address.Address, t AccessType) error {
	if !t.Valid() {
		return fault.InvalidAccessType
	}

	err := r.store.Update(func(trx *storage.Transaction) error {
		_, err := r.check(trx, caller, crate, Manage)
		if nil != err {
			return err
		}

		found, err := trx.Has(r.store.Pool.Grants, grantKey(crate, target, t))
		if nil != err {
			return err
		}
		if !found {
			return fault.GrantNotFound
		}

		if Owner == t {
			owners, err := r.countOwners(trx, crate, target)
			if nil != err {
				return err
			}
			if 0 == owners {
				return fault.LastOwner
			}
		}

		return r.deleteGrant(trx, crate, target, t)
	})
	if nil != err {
		return err
	}

	r.log.Infof("revoke: %s  %s: %s", crate, t, target)
	return nil
}

// unexpired owners of a crate other than the excluded address
func (r *Resolver) countOwners(rd storage.Reader, crate uuid.UUID, exclude address.Address) (int, error) {
	now := r.now()
	n := 0
	err := rd.Map(r.store.Pool.Grants, crate[:], func(key []byte, value []byte) error {
		g, err := decodeGrant(key, value)
		if nil != err {
			return err
		}
		if Owner == g.Type && exclude != g.Address && !g.Expired(now) {
			n += 1
		}
		return nil
	})
	return n, err
}

// a name held by an expired crate is free again
func (r *Resolver) createCrate(trx *storage.Transaction, owner address.Address, name string, comment string, expires *time.Time) (*Crate, error) {
	existing, err := trx.Get(r.store.Pool.CrateNames, crateNameKey(owner, name))
	if nil != err {
		return nil, err
	}
	if nil != existing {
		id := uuid.UUID{}
		copy(id[:], existing)
		_, err := r.readCrate(trx, id)
		if nil == err {
			return nil, fault.CrateExists
		}
		if fault.CrateNotFound != err {
			return nil, err
		}
	}

	crate := &Crate{
		ID:      uuid.New(),
		Name:    name,
		Comment: comment,
		Owner:   owner,
		Expires: expires,
		Created: r.now().UTC(),
	}
	buffer, err := json.Marshal(crate)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.Crates, crate.ID[:], buffer)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.CrateNames, crateNameKey(owner, name), crate.ID[:])
	if nil != err {
		return nil, err
	}
	_, err = r.putGrant(trx, crate.ID, owner, Owner, nil)
	if nil != err {
		return nil, err
	}
	return crate, nil
}

// a crate record, absent once expired
func (r *Resolver) readCrate(rd storage.Reader, id uuid.UUID) (*Crate, error) {
	buffer, err := rd.Get(r.store.Pool.Crates, id[:])
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.CrateNotFound
	}
	var crate Crate
	err = json.Unmarshal(buffer, &crate)
	if nil != err {
		return nil, err
	}
	if crate.Expired(r.now()) {
		return nil, fault.CrateNotFound
	}
	return &crate, nil
}

func (r *Resolver) grant(rd storage.Reader, crate uuid.UUID, a address.Address, t AccessType) (*Grant, error) {
	key := grantKey(crate, a, t)
	buffer, err := rd.Get(r.store.Pool.Grants, key)
	if nil != err || nil == buffer {
		return nil, err
	}
	return decodeGrant(key, buffer)
}

func (r *Resolver) putGrant(trx *storage.Transaction, crate uuid.UUID, a address.Address, t AccessType, expires *time.Time) (*Grant, error) {
	v := grantValue{
		Expires: expires,
		Created: r.now().UTC(),
	}
	buffer, err := json.Marshal(v)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.Grants, grantKey(crate, a, t), buffer)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.AddressGrants, addressGrantKey(a, crate, t), []byte{})
	if nil != err {
		return nil, err
	}
	return &Grant{
		Crate:   crate,
		Address: a,
		Type:    t,
		Expires: expires,
		Created: v.Created,
	}, nil
}

func (r *Resolver) deleteGrant(trx *storage.Transaction, crate uuid.UUID, a address.Address, t AccessType) error {
	err := trx.Delete(r.store.Pool.Grants, grantKey(crate, a, t))
	if nil != err {
		return err
	}
	return trx.Delete(r.store.Pool.AddressGrants, addressGrantKey(a, crate, t))
}
