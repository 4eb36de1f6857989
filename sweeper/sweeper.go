// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sweeper

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/comn-io/comnd/background"
)

const defaultInterval = 5 * time.Minute

// Purger - removes expired grants and reports how many went
type Purger interface {
	PurgeExpired() (int, error)
}

// Sweeper - periodic expired grant removal
type Sweeper struct {
	log      *logger.L
	purger   Purger
	interval time.Duration
}

// New - create a sweeper, a zero interval selects the default
func New(log *logger.L, purger Purger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{
		log:      log,
		purger:   purger,
		interval: interval,
	}
}

// Start - run the sweeper in the background
func (s *Sweeper) Start() *background.T {
	return background.Start(background.Processes{s}, nil)
}

// Run - sweep once at start then at every interval until shutdown
func (s *Sweeper) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	log.Info("starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.sweep()
		}
	}

	log.Info("stopped")
}

func (s *Sweeper) sweep() {
	n, err := s.purger.PurgeExpired()
	if nil != err {
		s.log.Errorf("sweep error: %s", err)
		return
	}
	s.log.Debugf("swept: %d grants", n)
}
