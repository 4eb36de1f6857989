// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/comn-io/comnd/command/comn-cli/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	a, err := checkOptionalAddress("balance", c.String("address"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(a)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.requireKey(); nil != err {
		return err
	}

	from, err := checkAddress("sender", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAddress("receiver", c.String("to"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	nonce := c.String("nonce")
	if "" == nonce {
		nonce = uuid.New().String()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", from)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
		fmt.Fprintf(m.e, "nonce: %s\n", nonce)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&rpccalls.TransferData{
		Sender:   from,
		Receiver: to,
		Amount:   amount,
		Nonce:    nonce,
		Comment:  c.String("comment"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkAddress("history", c.String("address"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.History(a, c.String("start"), count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
