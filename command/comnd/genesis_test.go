// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fixtures"
	"github.com/comn-io/comnd/ledger"
	"github.com/comn-io/comnd/storage"
)

func TestSetupGenesis(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	store, err := storage.OpenMemory(log)
	require.NoError(t, err, "open store")
	defer store.Close()

	resolver := access.New(log, store, access.Configuration{})
	engine := ledger.New(log, store, resolver, nil)

	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed).PubKey()
	genesis := GenesisType{
		Address: "≈6D",
		Supply:  100000000000,
		Key:     auth.PublicKeyHex(key) + "\n",
	}

	// a restart repeats the setup without issuing twice
	for i := 0; i < 2; i += 1 {
		err = setupGenesis(log, resolver, engine, genesis)
		require.NoError(t, err, "%d: setupGenesis", i)
	}

	balance, err := engine.Balance(address.ComnCoin)
	assert.Nil(t, err, "wrong balance error")
	assert.Equal(t, uint64(100000000000), balance, "wrong balance")

	controls, err := resolver.Controls(key, address.ComnCoin)
	assert.Nil(t, err, "wrong controls error")
	assert.True(t, controls, "key does not control genesis address")

	a, balance, err := engine.BalanceOf(key)
	assert.Nil(t, err, "wrong balance of error")
	assert.Equal(t, address.ComnCoin, a, "wrong first address")
	assert.Equal(t, uint64(100000000000), balance, "wrong balance of key")
}

func TestSetupGenesisBadKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	store, err := storage.OpenMemory(log)
	require.NoError(t, err, "open store")
	defer store.Close()

	resolver := access.New(log, store, access.Configuration{})
	engine := ledger.New(log, store, resolver, nil)

	err = setupGenesis(log, resolver, engine, GenesisType{Address: "≈6D", Supply: 1, Key: "xyz"})
	assert.NotNil(t, err, "bad key accepted")
}
