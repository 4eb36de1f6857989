// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/background"
)

type counter struct {
	ticks    int64
	finished int64
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&c.ticks, step)
		time.Sleep(time.Millisecond)
	}

	atomic.StoreInt64(&c.finished, 1)
}

func TestBackground(t *testing.T) {
	c1 := &counter{}
	c2 := &counter{}

	p := background.Start(background.Processes{c1, c2}, int64(3))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, c := range []*counter{c1, c2} {
		assert.Equal(t, int64(1), atomic.LoadInt64(&c.finished), "%d: not finished after stop", i)
		assert.True(t, atomic.LoadInt64(&c.ticks) > 0, "%d: never ran", i)
		assert.Equal(t, int64(0), atomic.LoadInt64(&c.ticks)%3, "%d: wrong argument", i)
	}

	// a second stop returns at once
	p.Stop()
}
