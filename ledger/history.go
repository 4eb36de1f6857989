// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"time"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/fault"
)

const (
	historyMediaType = "application/json"

	// fixed width so item paths sort by time
	historyTimeFormat = "2006-01-02T15:04:05.000000000Z"
)

// Entry - one side of an applied transfer
//
// Address is the other party
type Entry struct {
	Amount  uint64          `json:"amount"`
	Date    time.Time       `json:"date"`
	Credit  bool            `json:"credit"`
	Comment string          `json:"comment,omitempty"`
	Address address.Address `json:"addr"`
	Nonce   string          `json:"nonce"`
}

// History - entries of an address in time order strictly after start
//
// start is the path of the last entry of the previous page, or empty
func (e *Engine) History(caller access.Caller, a address.Address, start string, count int) ([]Entry, error) {
	id, err := e.directory.FindCrate(address.ComnCoin, a.String())
	if fault.CrateNotFound == err {
		return []Entry{}, nil
	}
	if nil != err {
		return nil, err
	}

	items, err := e.directory.Items(caller, id, start, count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var entry Entry
		err := json.Unmarshal(item.Data, &entry)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// HistoryPath - the item path of an entry
//
// the side suffix keeps both entries of a self transfer
func HistoryPath(entry *Entry) string {
	side := "/d"
	if entry.Credit {
		side = "/c"
	}
	return "/" + entry.Date.UTC().Format(historyTimeFormat) + "/" + entry.Nonce + side
}

// append to the history crate of an address, creating it on first use
//
// the transfer is already applied so failures are only logged
func (e *Engine) record(a address.Address, entry Entry) {
	id, err := e.directory.SystemCrate(address.ComnCoin, a.String(), a)
	if nil != err {
		e.log.Errorf("history: %s  crate error: %s", a, err)
		return
	}

	data, err := json.Marshal(entry)
	if nil != err {
		e.log.Errorf("history: %s  encode error: %s", a, err)
		return
	}

	err = e.directory.AppendItem(id, HistoryPath(&entry), historyMediaType, data)
	if nil != err {
		e.log.Errorf("history: %s  nonce: %q  append error: %s", a, entry.Nonce, err)
	}
}
