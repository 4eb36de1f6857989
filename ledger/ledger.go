// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"math"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/storage"
)

// nonce key spaces
const (
	transferNonce = 'T'
	genesisNonce  = 'G'
)

// Ledger - coin balances and transfers
type Ledger interface {
	Transfer(*btcec.PublicKey, *TransferRequest) (*Receipt, error)
	Balance(address.Address) (uint64, error)
	BalanceOf(*btcec.PublicKey) (address.Address, uint64, error)
	History(access.Caller, address.Address, string, int) ([]Entry, error)
}

// Directory - the address and crate operations the ledger relies on
type Directory interface {
	Exists(address.Address) (bool, error)
	Controls(*btcec.PublicKey, address.Address) (bool, error)
	Addresses(*btcec.PublicKey) ([]address.Address, error)
	SystemCrate(address.Address, string, address.Address) (uuid.UUID, error)
	FindCrate(address.Address, string) (uuid.UUID, error)
	AppendItem(uuid.UUID, string, string, json.RawMessage) error
	Items(access.Caller, uuid.UUID, string, int) ([]access.Item, error)
}

// Engine - a ledger kept in the store's balance and nonce pools
type Engine struct {
	log       *logger.L
	store     *storage.Store
	directory Directory
	now       func() time.Time
}

// New - create a ledger engine
func New(log *logger.L, store *storage.Store, directory Directory, clock func() time.Time) *Engine {
	if nil == clock {
		clock = time.Now
	}
	return &Engine{
		log:       log,
		store:     store,
		directory: directory,
		now:       clock,
	}
}

// Transfer - apply a transfer signed by a key controlling the sender
//
// business rejections are reported in the receipt, the error return is
// for access failures and store errors.  A rejected transfer leaves no
// trace, so its nonce may be used again.
func (e *Engine) Transfer(signer *btcec.PublicKey, request *TransferRequest) (*Receipt, error) {
	receipt := &Receipt{
		Outcome:  RejectedBadData,
		Sender:   request.Sender,
		Receiver: request.Receiver,
		Amount:   request.Amount,
		Nonce:    request.Nonce,
	}

	if nil != request.validate() {
		return receipt, nil
	}

	if nil == signer {
		return nil, fault.MissingToken
	}
	ok, err := e.directory.Controls(signer, request.Sender)
	if nil != err {
		return nil, err
	}
	if !ok {
		return nil, fault.NotController
	}

	ok, err = e.directory.Exists(request.Receiver)
	if nil != err {
		return nil, err
	}
	if !ok {
		return receipt, nil
	}

	timestamp := e.now().UTC()
	amount := request.Amount

	err = e.store.Update(func(trx *storage.Transaction) error {
		key := nonceKey(transferNonce, []byte(request.Nonce))
		used, err := trx.Has(e.store.Pool.Nonces, key)
		if nil != err {
			return err
		}
		if used {
			return fault.DuplicateNonce
		}
		err = trx.PutN(e.store.Pool.Nonces, key, uint64(timestamp.UnixNano()))
		if nil != err {
			return err
		}

		balance, _, err := trx.GetN(e.store.Pool.Balances, request.Sender[:])
		if nil != err {
			return err
		}
		if balance < amount {
			return fault.InsufficientFunds
		}
		err = trx.PutN(e.store.Pool.Balances, request.Sender[:], balance-amount)
		if nil != err {
			return err
		}

		credit, _, err := trx.GetN(e.store.Pool.Balances, request.Receiver[:])
		if nil != err {
			return err
		}
		if credit > math.MaxInt64-amount {
			return fault.TransferOverflow
		}
		err = trx.PutN(e.store.Pool.Balances, request.Receiver[:], credit+amount)
		if nil != err {
			return err
		}

		receipt.Balance, _, err = trx.GetN(e.store.Pool.Balances, request.Sender[:])
		return err
	})

	switch err {
	case nil:
		receipt.Outcome = Applied
	case fault.DuplicateNonce:
		receipt.Outcome = RejectedDuplicate
	case fault.InsufficientFunds:
		receipt.Outcome = RejectedInsufficientFunds
	case fault.TransferOverflow:
		receipt.Outcome = RejectedBadData
	default:
		e.log.Errorf("transfer nonce: %q  error: %s", request.Nonce, err)
		return nil, err
	}

	if Applied != receipt.Outcome {
		e.log.Debugf("transfer nonce: %q  rejected: %s", request.Nonce, receipt.Outcome)
		return receipt, nil
	}

	e.log.Infof("transfer nonce: %q  %s → %s  amount: %d", request.Nonce, request.Sender, request.Receiver, amount)

	e.record(request.Sender, Entry{
		Amount:  amount,
		Date:    timestamp,
		Credit:  false,
		Comment: request.Comment,
		Address: request.Receiver,
		Nonce:   request.Nonce,
	})
	e.record(request.Receiver, Entry{
		Amount:  amount,
		Date:    timestamp,
		Credit:  true,
		Comment: request.Comment,
		Address: request.Sender,
		Nonce:   request.Nonce,
	})

	return receipt, nil
}

// Balance - the balance of an address, zero if it never held coins
func (e *Engine) Balance(a address.Address) (uint64, error) {
	balance, _, err := e.store.Pool.Balances.GetN(a[:])
	return balance, err
}

// BalanceOf - the balance of the first address a key controls
func (e *Engine) BalanceOf(key *btcec.PublicKey) (address.Address, uint64, error) {
	addresses, err := e.directory.Addresses(key)
	if nil != err {
		return address.Address{}, 0, err
	}
	if 0 == len(addresses) {
		return address.Address{}, 0, fault.AddressNotFound
	}
	balance, err := e.Balance(addresses[0])
	return addresses[0], balance, err
}

// Genesis - issue the initial supply to an address once
//
// returns false if the supply was issued before
func (e *Engine) Genesis(a address.Address, supply uint64) (bool, error) {
	if supply > math.MaxInt64 {
		return false, fault.InvalidAmount
	}

	applied := false
	err := e.store.Update(func(trx *storage.Transaction) error {
		key := nonceKey(genesisNonce, a[:])
		done, err := trx.Has(e.store.Pool.Nonces, key)
		if nil != err || done {
			return err
		}
		err = trx.PutN(e.store.Pool.Nonces, key, uint64(e.now().UnixNano()))
		if nil != err {
			return err
		}

		balance, _, err := trx.GetN(e.store.Pool.Balances, a[:])
		if nil != err {
			return err
		}
		if balance > math.MaxInt64-supply {
			return fault.TransferOverflow
		}
		applied = true
		return trx.PutN(e.store.Pool.Balances, a[:], balance+supply)
	})
	if nil != err {
		return false, err
	}

	if applied {
		e.log.Infof("genesis: %s  supply: %d", a, supply)
	}
	return applied, nil
}

func nonceKey(space byte, nonce []byte) []byte {
	return append([]byte{space}, nonce...)
}
