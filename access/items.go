// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/storage"
)

// PutItem - store or replace an item, the caller needs write access
//
// the hash is the SHA-256 of the data and must match it
func (r *Resolver) PutItem(caller Caller, crate uuid.UUID, n *NewItem) (*Item, error) {
	if len(n.Data) > r.maximumItem {
		return nil, fault.PayloadTooLarge
	}
	err := validatePath(n.Path)
	if nil != err {
		return nil, err
	}
	err = verifyHash(n.Data, n.Hash)
	if nil != err {
		return nil, err
	}

	var item *Item
	err = r.store.Update(func(trx *storage.Transaction) error {
		grants, err := r.check(trx, caller, crate, Write)
		if nil != err {
			return err
		}
		item, err = r.putItem(trx, crate, n, addedBy(grants))
		return err
	})
	if nil != err {
		return nil, err
	}

	r.log.Debugf("item: %s%s  by: %s  scope: %q  size: %d", crate, n.Path, item.AddedBy, n.Scope, len(n.Data))
	return item, nil
}

// AppendItem - store an item on behalf of the node itself
func (r *Resolver) AppendItem(crate uuid.UUID, path string, mediaType string, data json.RawMessage) error {
	err := validatePath(path)
	if nil != err {
		return err
	}
	digest := sha256.Sum256(data)
	n := &NewItem{
		Path:      path,
		MediaType: mediaType,
		Hash:      digest[:],
		Data:      data,
	}
	return r.store.Update(func(trx *storage.Transaction) error {
		c, err := r.readCrate(trx, crate)
		if nil != err {
			return err
		}
		_, err = r.putItem(trx, crate, n, c.Owner)
		return err
	})
}

// Item - read one item, the caller needs read access
func (r *Resolver) Item(caller Caller, crate uuid.UUID, path string) (*Item, error) {
	var item Item
	err := r.store.View(func(snap *storage.Snapshot) error {
		_, err := r.check(snap, caller, crate, Read)
		if nil != err {
			return err
		}
		buffer, err := snap.Get(r.store.Pool.Items, itemKey(crate, path))
		if nil != err {
			return err
		}
		if nil == buffer {
			return fault.ItemNotFound
		}
		return json.Unmarshal(buffer, &item)
	})
	if nil != err {
		return nil, err
	}
	return &item, nil
}

// Items - a page of items in path order strictly after start
//
// an empty start begins at the first item
func (r *Resolver) Items(caller Caller, crate uuid.UUID, start string, count int) ([]Item, error) {
	if count <= 0 || count > maximumListCount {
		return nil, fault.InvalidCount
	}

	_, err := r.Check(caller, crate, Read)
	if nil != err {
		return nil, err
	}

	cursor := r.store.Pool.Items.NewPrefixCursor(crate[:])
	if "" != start {
		cursor.Seek(append(itemKey(crate, start), 0x00))
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	items := make([]Item, 0, len(elements))
	for _, e := range elements {
		var item Item
		err := json.Unmarshal(e.Value, &item)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Resolver) putItem(trx *storage.Transaction, crate uuid.UUID, n *NewItem, by address.Address) (*Item, error) {
	item := &Item{
		Crate:     crate,
		Path:      n.Path,
		MediaType: n.MediaType,
		AddedBy:   by,
		Scope:     n.Scope,
		Hash:      hex.EncodeToString(n.Hash),
		Data:      n.Data,
		Created:   r.now().UTC(),
	}
	buffer, err := json.Marshal(item)
	if nil != err {
		return nil, err
	}
	err = trx.Put(r.store.Pool.Items, itemKey(crate, n.Path), buffer)
	if nil != err {
		return nil, err
	}
	return item, nil
}

// attribute a write to the first grant held by a real address
func addedBy(grants []Grant) address.Address {
	for _, g := range grants {
		if !address.IsWellKnown(g.Address) {
			return g.Address
		}
	}
	return grants[0].Address
}

func verifyHash(data []byte, hash []byte) error {
	if sha256.Size != len(hash) {
		return fault.InvalidItemHash
	}
	digest := sha256.Sum256(data)
	if !bytes.Equal(digest[:], hash) {
		return fault.ItemHashMismatch
	}
	return nil
}

func validatePath(path string) error {
	if !strings.HasPrefix(path, "/") || len(path) > maximumPathLength || strings.ContainsRune(path, 0) {
		return fault.InvalidItemPath
	}
	return nil
}
