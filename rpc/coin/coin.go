// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/ledger"
	"github.com/comn-io/comnd/rpc/ratelimit"
	"github.com/comn-io/comnd/rpc/request"
)

const (
	rateLimitCoin = 200
	rateBurstCoin = 100
)

// limit for count
const maximumHistoryCount = 100

// Coin - type for RPC calls
type Coin struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Authenticator auth.Authenticator
	Registry      access.Registry
	Ledger        ledger.Ledger
}

// New - create the coin service
func New(log *logger.L, authenticator auth.Authenticator, registry access.Registry, l ledger.Ledger) *Coin {
	return &Coin{
		Log:           log,
		Limiter:       ratelimit.New(rateLimitCoin, rateBurstCoin),
		Authenticator: authenticator,
		Registry:      registry,
		Ledger:        l,
	}
}

// ---

// BalanceArguments - the address is optional, without it the first
// address of the token's key is used
type BalanceArguments struct {
	Authorization string           `json:"authorization"`
	Address       *address.Address `json:"address,omitempty"`
}

// BalanceReply - balance of one address
type BalanceReply struct {
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance"`
}

// Balance - balance of an address controlled by the caller
func (c *Coin) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	_, identity, err := request.Required(c.Authenticator, arguments.Authorization, nil)
	if nil != err {
		return err
	}

	if nil == arguments.Address {
		a, balance, err := c.Ledger.BalanceOf(identity.PublicKey)
		if nil != err {
			return err
		}
		reply.Address = a
		reply.Balance = balance
		return nil
	}

	ok, err := c.Registry.Controls(identity.PublicKey, *arguments.Address)
	if nil != err {
		return err
	}
	if !ok {
		return fault.NotController
	}

	balance, err := c.Ledger.Balance(*arguments.Address)
	if nil != err {
		return err
	}
	reply.Address = *arguments.Address
	reply.Balance = balance
	return nil
}

// ---

// TransferArguments - a protected request carrying a transfer
type TransferArguments struct {
	Authorization string                 `json:"authorization"`
	Request       *auth.ProtectedRequest `json:"request"`
}

// TransferReply - the receipt and its status
//
// a rejected transfer is a reply, not an error
type TransferReply struct {
	Receipt *ledger.Receipt `json:"receipt"`
	Status  string          `json:"status"`
	Code    int             `json:"code"`
}

// Transfer - move coins from an address the caller controls
func (c *Coin) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	_, identity, err := request.Required(c.Authenticator, arguments.Authorization, nil)
	if nil != err {
		return err
	}

	message, err := c.Authenticator.Unwrap(identity, arguments.Request)
	if nil != err {
		return err
	}

	transfer, err := ledger.DecodeTransfer(message)
	if nil != err {
		c.Log.Debugf("transfer decode error: %s", err)
		reply.Receipt = &ledger.Receipt{Outcome: ledger.RejectedBadData}
		reply.fill()
		return nil
	}

	receipt, err := c.Ledger.Transfer(identity.PublicKey, transfer)
	if nil != err {
		return err
	}

	reply.Receipt = receipt
	reply.fill()
	return nil
}

func (reply *TransferReply) fill() {
	status := fault.StatusOf(reply.Receipt.Err())
	reply.Status = status.String()
	reply.Code = status.Code()
}

// ---

// HistoryArguments - a page of history entries after Start
type HistoryArguments struct {
	Authorization string          `json:"authorization"`
	Address       address.Address `json:"address"`
	Start         string          `json:"start"`
	Count         int             `json:"count"`
}

// HistoryReply - entries with the path to continue from
type HistoryReply struct {
	Entries   []ledger.Entry `json:"entries"`
	NextStart string         `json:"nextStart"`
}

// History - transfers involving an address
func (c *Coin) History(arguments *HistoryArguments, reply *HistoryReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumHistoryCount); nil != err {
		return err
	}

	caller, err := request.Caller(c.Authenticator, arguments.Authorization, nil)
	if nil != err {
		return err
	}

	entries, err := c.Ledger.History(caller, arguments.Address, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Entries = entries
	reply.NextStart = arguments.Start
	if 0 != len(entries) {
		reply.NextStart = ledger.HistoryPath(&entries[len(entries)-1])
	}
	return nil
}
