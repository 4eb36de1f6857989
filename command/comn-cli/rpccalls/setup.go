// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the comnd JSON RPC interface
package rpccalls

import (
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	signer  *Signer
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a comnd
//
// signer may be nil, only anonymous reads are then possible
func NewClient(connect string, signer *Signer, verbose bool, handle io.Writer) (*Client, error) {

	conn, err := net.DialTimeout("tcp", connect, dialTimeout)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		signer:  signer,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the comnd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method, arguments)
	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	c.printJson("reply", reply)
	return nil
}
