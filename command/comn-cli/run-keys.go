// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/comn-io/comnd/auth"
)

type generateReply struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := auth.NewPrivateKey()
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		PrivateKey: hex.EncodeToString(key.Serialize()),
		PublicKey:  auth.PublicKeyHex(key.PubKey()),
	})
	return nil
}

type tokenReply struct {
	Authorization string `json:"authorization"`
	PublicKey     string `json:"public_key"`
}

func runToken(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	header, err := m.signer.Header()
	if nil != err {
		return err
	}

	printJson(m.w, tokenReply{
		Authorization: header,
		PublicKey:     auth.PublicKeyHex(m.signer.Key.PubKey()),
	})
	return nil
}

func runProtect(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	message := c.String("message")
	if "" == message {
		return fmt.Errorf("message is required")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "message: %s\n", message)
	}

	request, err := auth.Protect(m.signer.Key, message)
	if nil != err {
		return err
	}

	printJson(m.w, request)
	return nil
}
