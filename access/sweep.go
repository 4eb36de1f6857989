// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/comn-io/comnd/storage"
)

// PurgeExpired - delete every grant whose expiry has passed
//
// returns the number of grants removed
func (r *Resolver) PurgeExpired() (int, error) {
	now := r.now()
	expired := make([]Grant, 0, 16)

	err := r.store.Update(func(trx *storage.Transaction) error {
		err := trx.Map(r.store.Pool.Grants, nil, func(key []byte, value []byte) error {
			g, err := decodeGrant(key, value)
			if nil != err {
				return err
			}
			if g.Expired(now) {
				expired = append(expired, *g)
			}
			return nil
		})
		if nil != err {
			return err
		}

		for _, g := range expired {
			err := r.deleteGrant(trx, g.Crate, g.Address, g.Type)
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		return 0, err
	}

	if len(expired) > 0 {
		r.log.Infof("purged: %d expired grants", len(expired))
	}
	return len(expired), nil
}
