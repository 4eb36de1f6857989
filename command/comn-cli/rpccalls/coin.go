// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/rpc/coin"
)

// Balance - balance of an address, or of the signer's first address
// when a is nil
func (c *Client) Balance(a *address.Address) (*coin.BalanceReply, error) {
	header, err := c.signer.Header()
	if nil != err {
		return nil, err
	}

	arguments := &coin.BalanceArguments{
		Authorization: header,
		Address:       a,
	}

	var reply coin.BalanceReply
	if err := c.call("Coin.Balance", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferData - the fields of a transfer
type TransferData struct {
	Sender   address.Address
	Receiver address.Address
	Amount   uint64
	Nonce    string
	Comment  string
}

// the body as the server decodes it
type transferMessage struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   uint64  `json:"amount"`
	Nonce    string  `json:"nonce"`
	Comment  *string `json:"comment,omitempty"`
}

// Transfer - move coins, a rejection is reported in the reply
func (c *Client) Transfer(data *TransferData) (*coin.TransferReply, error) {
	message := &transferMessage{
		Sender:   data.Sender.String(),
		Receiver: data.Receiver.String(),
		Amount:   data.Amount,
		Nonce:    data.Nonce,
	}
	if "" != data.Comment {
		message.Comment = &data.Comment
	}

	header, request, err := c.signed(message)
	if nil != err {
		return nil, err
	}

	arguments := &coin.TransferArguments{
		Authorization: header,
		Request:       request,
	}

	var reply coin.TransferReply
	if err := c.call("Coin.Transfer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// History - one page of transfer history, start is the NextStart of
// the previous page
func (c *Client) History(a address.Address, start string, count int) (*coin.HistoryReply, error) {
	header, err := c.optional()
	if nil != err {
		return nil, err
	}

	arguments := &coin.HistoryArguments{
		Authorization: header,
		Address:       a,
		Start:         start,
		Count:         count,
	}

	var reply coin.HistoryReply
	if err := c.call("Coin.History", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
