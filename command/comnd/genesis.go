// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/ledger"
)

const genesisName = "genesis"

// create the genesis address, attach its key and issue the supply
//
// every step is skipped when already done so restarting is safe
func setupGenesis(log *logger.L, resolver *access.Resolver, engine *ledger.Engine, genesis GenesisType) error {
	a, err := address.New(genesis.Address)
	if nil != err {
		return err
	}

	found, err := resolver.Exists(a)
	if nil != err {
		return err
	}
	if !found {
		_, err := resolver.CreateAddress(a, genesisName)
		if nil != err {
			return err
		}
		log.Infof("created genesis address: %s", a)
	}

	if k := strings.TrimSpace(genesis.Key); "" != k {
		key, err := auth.ParsePublicKeyHex(k)
		if nil != err {
			return err
		}
		controls, err := resolver.Controls(key, a)
		if nil != err {
			return err
		}
		if !controls {
			err = resolver.AttachKey(a, key)
			if nil != err {
				return err
			}
			log.Infof("genesis address: %s  attached key: %s", a, k)
		}
	}

	if 0 == genesis.Supply {
		return nil
	}
	applied, err := engine.Genesis(a, genesis.Supply)
	if nil != err {
		return err
	}
	if !applied {
		log.Debugf("genesis supply for: %s was already issued", a)
	}
	return nil
}
