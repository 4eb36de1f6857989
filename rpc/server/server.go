// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/counter"
	"github.com/comn-io/comnd/ledger"
	"github.com/comn-io/comnd/rpc/addresses"
	"github.com/comn-io/comnd/rpc/coin"
	"github.com/comn-io/comnd/rpc/crates"
	"github.com/comn-io/comnd/rpc/node"
)

// Resolver - the address and crate operations behind the services
type Resolver interface {
	access.Registry
	access.Authority
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, authenticator auth.Authenticator, resolver Resolver, l ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(addresses.New(log, authenticator, resolver))
	_ = server.Register(coin.New(log, authenticator, resolver, l))
	_ = server.Register(crates.New(log, authenticator, resolver))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
