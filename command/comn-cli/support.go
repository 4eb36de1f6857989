// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/command/comn-cli/rpccalls"
)

func (m *metadata) client() (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.signer, m.verbose, m.e)
}

// a key is needed for anything that changes state
func (m *metadata) requireKey() error {
	if nil == m.signer {
		return fmt.Errorf("a private key is required: use --key or COMN_KEY")
	}
	return nil
}

func scopes(s string) []string {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil
	}
	return strings.Split(s, ",")
}

func checkAddress(name string, s string) (address.Address, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return address.Address{}, fmt.Errorf("%s address is required", name)
	}
	a, err := address.New(s)
	if nil != err {
		return address.Address{}, fmt.Errorf("%s address: %q  error: %s", name, s, err)
	}
	return a, nil
}

// nil when not given
func checkOptionalAddress(name string, s string) (*address.Address, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	a, err := checkAddress(name, s)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

func checkCrate(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return uuid.Nil, fmt.Errorf("crate is required")
	}
	id, err := uuid.Parse(s)
	if nil != err {
		return uuid.Nil, fmt.Errorf("crate: %q  error: %s", s, err)
	}
	return id, nil
}

func checkAccessType(s string) (access.AccessType, error) {
	if "" == strings.TrimSpace(s) {
		return 0, fmt.Errorf("access type is required")
	}
	t, err := access.ParseAccessType(s)
	if nil != err {
		return 0, fmt.Errorf("access type: %q  error: %s", s, err)
	}
	return t, nil
}

// nil when not given
func checkExpiry(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if nil != err {
		return nil, fmt.Errorf("expires: %q  error: %s", s, err)
	}
	return &t, nil
}
