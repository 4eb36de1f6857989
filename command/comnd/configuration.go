// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/configuration"
	"github.com/comn-io/comnd/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "comnd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "comnd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000

	defaultMaximumItem    = 1024 * 1024
	defaultMaximumPayload = 2 * 1024 * 1024
	defaultTokenCache     = 300
	defaultSweepInterval  = 300
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// DataSizeType - byte limits of stored items and signed messages
type DataSizeType struct {
	MaximumItem    int `gluamapper:"max" json:"max"`
	MaximumPayload int `gluamapper:"max_payload" json:"max_payload"`
}

type TokenType struct {
	CacheSeconds int `gluamapper:"cache_seconds" json:"cache_seconds"`
}

// GenesisType - the address holding the initial supply
//
// Key is the hex public key given control of the address, it may be
// left empty once the address has a key
type GenesisType struct {
	Address string `gluamapper:"address" json:"address"`
	Supply  uint64 `gluamapper:"supply" json:"supply"`
	Key     string `gluamapper:"key" json:"key"`
}

type SweeperType struct {
	IntervalSeconds int `gluamapper:"interval_seconds" json:"interval_seconds"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Origins       []string     `gluamapper:"origins" json:"origins"`
	DataSize      DataSizeType `gluamapper:"data_size" json:"data_size"`
	Token         TokenType    `gluamapper:"token" json:"token"`
	Genesis       GenesisType  `gluamapper:"genesis" json:"genesis"`
	Sweeper       SweeperType  `gluamapper:"sweeper" json:"sweeper"`

	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		DataSize: DataSizeType{
			MaximumItem:    defaultMaximumItem,
			MaximumPayload: defaultMaximumPayload,
		},

		Token: TokenType{
			CacheSeconds: defaultTokenCache,
		},

		Genesis: GenesisType{
			Address: address.ComnCoin.String(),
		},

		Sweeper: SweeperType{
			IntervalSeconds: defaultSweepInterval,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if 0 == len(options.Origins) {
		return nil, fmt.Errorf("origins: at least one origin is required")
	}

	if "" == options.Genesis.Address {
		return nil, fmt.Errorf("genesis: address is required")
	}
	if a, err := address.New(options.Genesis.Address); nil != err {
		return nil, fmt.Errorf("genesis: address: %q  error: %s", options.Genesis.Address, err)
	} else if address.IsWellKnown(a) {
		return nil, fmt.Errorf("genesis: address: %q cannot hold coins", options.Genesis.Address)
	}

	// optional absolute paths i.e. blank or an absolute path
	configuration.MakeAbsolute(options.DataDirectory, &options.PidFile)

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		if err := configuration.PlainName(f); nil != err {
			return nil, fmt.Errorf("Files: %q  error: %s", f, err)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	options.Database.Name = configuration.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}
