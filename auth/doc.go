// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - bearer tokens and protected request bodies
//
// A token is a JSON object carried in an authorization header as
//
//	COMN {"origin":...,"scope":...,"valid_secs":...,"created":...,"signature":...,"recid":...}
//
// and signed with a recoverable secp256k1 signature over the Keccak-256
// of its fields, so the server learns the caller's public key from the
// token alone.
//
// A protected request is {"msg":...,"proof":...} where proof is a plain
// secp256k1 signature over the BLAKE3-256 of msg made by the same key.
// Only a verified msg is passed on to the handler.
package auth
