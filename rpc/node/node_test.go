// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/counter"
	"github.com/comn-io/comnd/fixtures"
	"github.com/comn-io/comnd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var c counter.Counter
	c.Acquire(0)
	c.Acquire(0)
	c.Release()

	start := time.Now().Add(-time.Hour)
	n := node.New(logger.New(fixtures.LogCategory), start, "100", &c)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, uint64(1), reply.Connections.Current, "wrong current connections")
	assert.Equal(t, uint64(2), reply.Connections.Total, "wrong total connections")

	uptime, err := time.ParseDuration(reply.Uptime)
	assert.Nil(t, err, "wrong uptime format")
	assert.True(t, uptime >= time.Hour, "wrong uptime: %s", reply.Uptime)
}
