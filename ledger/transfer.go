// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
)

const maximumNonceLength = 256

// Outcome - the terminal state of a transfer request
type Outcome int

// transfer outcomes
const (
	Applied Outcome = iota
	RejectedDuplicate
	RejectedInsufficientFunds
	RejectedBadData
)

var outcomeNames = []string{
	Applied:                   "applied",
	RejectedDuplicate:         "duplicate",
	RejectedInsufficientFunds: "insufficient funds",
	RejectedBadData:           "bad data",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "invalid"
	}
	return outcomeNames[o]
}

// MarshalText - outcome name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText - outcome from name
func (o *Outcome) UnmarshalText(s []byte) error {
	for i, name := range outcomeNames {
		if name == string(s) {
			*o = Outcome(i)
			return nil
		}
	}
	return fault.InvalidTransfer
}

// TransferRequest - move an amount between two addresses
type TransferRequest struct {
	Sender   address.Address `json:"sender"`
	Receiver address.Address `json:"receiver"`
	Amount   uint64          `json:"amount"`
	Nonce    string          `json:"nonce"`
	Comment  string          `json:"comment,omitempty"`
}

// Receipt - the result of a transfer request
//
// Balance is the sender's balance after an applied transfer
type Receipt struct {
	Outcome  Outcome         `json:"outcome"`
	Sender   address.Address `json:"sender"`
	Receiver address.Address `json:"receiver"`
	Amount   uint64          `json:"amount"`
	Nonce    string          `json:"nonce"`
	Balance  uint64          `json:"balance"`
}

// Err - the error class of a rejected outcome, nil when applied
func (r *Receipt) Err() error {
	switch r.Outcome {
	case Applied:
		return nil
	case RejectedDuplicate:
		return fault.DuplicateNonce
	case RejectedInsufficientFunds:
		return fault.InsufficientFunds
	default:
		return fault.InvalidTransfer
	}
}

// the form a transfer takes on the wire, the amount stays as text
// until its sign and range are checked
type transferMessage struct {
	Sender   string      `json:"sender"`
	Receiver string      `json:"receiver"`
	Amount   json.Number `json:"amount"`
	Nonce    string      `json:"nonce"`
	Comment  *string     `json:"comment"`
}

// DecodeTransfer - parse the body of a protected transfer request
func DecodeTransfer(message string) (*TransferRequest, error) {
	var m transferMessage
	err := json.Unmarshal([]byte(message), &m)
	if nil != err {
		return nil, fault.InvalidTransfer
	}

	sender, err := address.New(m.Sender)
	if nil != err {
		return nil, err
	}
	receiver, err := address.New(m.Receiver)
	if nil != err {
		return nil, err
	}

	amount, err := parseAmount(m.Amount)
	if nil != err {
		return nil, err
	}

	request := &TransferRequest{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Nonce:    m.Nonce,
	}
	if nil != m.Comment {
		request.Comment = *m.Comment
	}

	err = request.validate()
	if nil != err {
		return nil, err
	}
	return request, nil
}

// amounts are whole non-negative numbers that fit a balance
func parseAmount(n json.Number) (uint64, error) {
	if "" == n {
		return 0, fault.InvalidAmount
	}
	i, err := n.Int64()
	if nil != err || i < 0 {
		return 0, fault.InvalidAmount
	}
	return uint64(i), nil
}

func (t *TransferRequest) validate() error {
	if t.Amount > math.MaxInt64 {
		return fault.InvalidAmount
	}
	if "" == t.Nonce || len(t.Nonce) > maximumNonceLength || strings.ContainsRune(t.Nonce, 0) {
		return fault.InvalidNonce
	}
	if address.IsWellKnown(t.Sender) || address.IsWellKnown(t.Receiver) {
		return fault.InvalidTransfer
	}
	return nil
}
