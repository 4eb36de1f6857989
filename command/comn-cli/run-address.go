// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/comn-io/comnd/command/comn-cli/rpccalls"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkOptionalAddress("lookup", c.String("address"))
	if nil != err {
		return err
	}

	data := &rpccalls.LookupData{
		Address: a,
		Name:    c.String("name"),
		Key:     strings.TrimSpace(c.String("public-key")),
	}
	if nil == data.Address && "" == data.Name && "" == data.Key {
		return fmt.Errorf("one of address, name or public key is required")
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Lookup(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(c.String("name"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAddKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	a, err := checkAddress("target", c.String("address"))
	if nil != err {
		return err
	}

	key := strings.TrimSpace(c.String("public-key"))
	if "" == key {
		return fmt.Errorf("public key is required")
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddKey(a, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
