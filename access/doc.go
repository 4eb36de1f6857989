// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access resolves callers to addresses and addresses to grants.
//
// A caller is a verified public key, or nobody.  Every caller may act
// as the Public address, every key as the Registered address and as
// each address the key controls.  A crate is readable or writable by a
// caller if any of those addresses holds an unexpired grant of a
// suitable type.
//
// Each crate keeps at least one Owner grant at all times, owner grants
// cannot expire and the last one cannot be revoked.
package access
