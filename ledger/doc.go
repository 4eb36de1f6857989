// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger moves coins between addresses.
//
// Each transfer carries a caller chosen nonce.  The nonce check, its
// reservation, the debit and the credit happen in one store
// transaction, so a nonce is applied at most once and no balance goes
// negative however requests interleave.  A rejected transfer is
// discarded whole, including its nonce.
//
// Balances are kept one row per address.  Every applied transfer adds
// an entry to the history crate of both parties.
package ledger
