// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/comn-io/comnd/command/comn-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	owner, err := checkAddress("owner", c.String("owner"))
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("crate name is required")
	}

	expires, err := checkExpiry(c.String("expires"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateCrate(&rpccalls.CrateData{
		Owner:   owner,
		Name:    name,
		Comment: c.String("comment"),
		Expires: expires,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	as, err := checkOptionalAddress("acting", c.String("as"))
	if nil != err {
		return err
	}
	crate, err := checkCrate(c.String("crate"))
	if nil != err {
		return err
	}
	path := c.String("path")
	if "" == path {
		return fmt.Errorf("item path is required")
	}
	data := c.String("data")
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("item data: %q  is not JSON", data)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PutItem(&rpccalls.ItemData{
		As:        as,
		Crate:     crate,
		Path:      path,
		MediaType: c.String("media-type"),
		Data:      json.RawMessage(data),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// the flags shared by grant and revoke
func grantData(c *cli.Context) (*rpccalls.GrantData, error) {
	as, err := checkOptionalAddress("acting", c.String("as"))
	if nil != err {
		return nil, err
	}
	crate, err := checkCrate(c.String("crate"))
	if nil != err {
		return nil, err
	}
	grantee, err := checkAddress("grantee", c.String("address"))
	if nil != err {
		return nil, err
	}
	t, err := checkAccessType(c.String("type"))
	if nil != err {
		return nil, err
	}

	return &rpccalls.GrantData{
		As:      as,
		Crate:   crate,
		Address: grantee,
		Type:    t,
	}, nil
}

func runGrant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	data, err := grantData(c)
	if nil != err {
		return err
	}
	data.Expires, err = checkExpiry(c.String("expires"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Grant(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRevoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	data, err := grantData(c)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Revoke(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
