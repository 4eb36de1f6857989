// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a bounded gauge of things in use, such as connections
//
// the zero value is an empty counter
type Counter struct {
	current uint64
	total   uint64
}

// Acquire - add one unless the limit is already reached
//
// a zero limit means no limit
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64(&c.current)
		if 0 != limit && n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.current, n, n+1) {
			atomic.AddUint64(&c.total, 1)
			return true
		}
	}
}

// Release - give back one acquired unit
func (c *Counter) Release() {
	atomic.AddUint64(&c.current, ^uint64(0))
}

// Current - units held now
func (c *Counter) Current() uint64 {
	return atomic.LoadUint64(&c.current)
}

// Total - units ever acquired
func (c *Counter) Total() uint64 {
	return atomic.LoadUint64(&c.total)
}

// IsZero - check if nothing is held
func (c *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64(&c.current)
}
