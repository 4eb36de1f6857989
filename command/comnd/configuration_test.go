// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comn-io/comnd/address"
)

func writeConfiguration(t *testing.T, source string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "comnd.conf")
	err := os.WriteFile(fileName, []byte(source), 0600)
	require.NoError(t, err, "write configuration")
	return fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    origins = { "comn.opus.ai" },
    client_rpc = { listen = { "127.0.0.1:2130" } },
    logging = { levels = { ledger = "debug" } },
}
`)
	dir := filepath.Dir(fileName)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "getConfiguration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(options.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), options.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "", options.PidFile, "pid file")
	assert.Equal(t, address.ComnCoin.String(), options.Genesis.Address, "genesis address")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "listen")
	assert.Equal(t, defaultMaximumItem, options.DataSize.MaximumItem, "maximum item")
	assert.Equal(t, defaultSweepInterval, options.Sweeper.IntervalSeconds, "sweep interval")
	assert.Equal(t, "debug", options.Logging.Levels["ledger"], "ledger log level")

	_, err = os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory was not created")
}

func TestGetConfigurationOverrides(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    pidfile = "comnd.pid",
    origins = { "comn.opus.ai", "localhost" },
    genesis = { address = "≈a", supply = 5000 },
    data_size = { max = 64 },
    client_rpc = { maximum_connections = 3, bandwidth = 2000000, listen = { "*:2130" } },
}
`)
	dir := filepath.Dir(fileName)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "getConfiguration")

	assert.Equal(t, filepath.Join(dir, "comnd.pid"), options.PidFile, "pid file")
	assert.Equal(t, []string{"comn.opus.ai", "localhost"}, options.Origins, "origins")
	assert.Equal(t, "≈a", options.Genesis.Address, "genesis address")
	assert.Equal(t, uint64(5000), options.Genesis.Supply, "genesis supply")
	assert.Equal(t, 64, options.DataSize.MaximumItem, "maximum item")
	assert.Equal(t, defaultMaximumPayload, options.DataSize.MaximumPayload, "maximum payload")
	assert.Equal(t, uint64(3), options.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, float64(2000000), options.ClientRPC.Bandwidth, "bandwidth")
}

func TestGetConfigurationErrors(t *testing.T) {
	sources := []string{
		`return { origins = { "comn.opus.ai" } }`,
		`return { data_directory = ".", origins = {} }`,
		`return { data_directory = ".", origins = { "comn.opus.ai" }, genesis = { address = "6D" } }`,
		`return { data_directory = ".", origins = { "comn.opus.ai" }, genesis = { address = "≈7ZZZZZZZZZZZZZZZZZZZZZZZZZ" } }`,
		`return { data_directory = ".", origins = { "comn.opus.ai" }, database = { name = "sub/comnd.leveldb" } }`,
		`return { data_directory = "/no/such/directory", origins = { "comn.opus.ai" } }`,
		`return 42`,
	}

	for i, source := range sources {
		_, err := getConfiguration(writeConfiguration(t, source))
		assert.NotNil(t, err, "%d: expected an error", i)
	}
}
