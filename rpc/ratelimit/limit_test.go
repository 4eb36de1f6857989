// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := ratelimit.New(1000, 10)

	assert.NoError(t, ratelimit.Limit(l), "single")
	assert.NoError(t, ratelimit.LimitN(l, 5, 10), "several")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 10), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 11, 10), "too many")
}

func TestLimitBeyondBurst(t *testing.T) {
	l := ratelimit.New(1000, 2)

	// more than the burst can never be reserved
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(l, 3, 10), "beyond burst")
}
