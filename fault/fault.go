// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthError GenericError
type CodecError GenericError
type ExistsError GenericError
type ForbiddenError GenericError
type FundsError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AddressNotFound         = NotFoundError("address not found")
	AddressOverflow         = CodecError("address exceeds 128 bits")
	AlreadyInitialised      = ProcessError("already initialised")
	AlreadyRegistered       = ExistsError("already registered")
	BadProofEncoding        = IntegrityError("proof encoding is invalid")
	BadScheme               = AuthError("authorization scheme is not supported")
	BadSignature            = AuthError("token signature is invalid")
	ConfigurationNotFound   = NotFoundError("configuration file not found")
	ConfigurationNotTable   = InvalidError("configuration does not return a table")
	CorruptRecord           = ProcessError("record is corrupt")
	CrateExists             = ExistsError("crate already exists")
	CrateNotFound           = NotFoundError("crate not found")
	DatabaseIsNotSet        = ProcessError("database is not set")
	DuplicateNonce          = ExistsError("nonce was already used")
	EmptyAddress            = CodecError("address has no digits")
	Forbidden               = ForbiddenError("access forbidden")
	GrantNotFound           = NotFoundError("grant not found")
	IncompatibleVersion     = ProcessError("database version is incompatible")
	InsufficientFunds       = FundsError("insufficient funds")
	InvalidAccessType       = InvalidError("invalid access type")
	InvalidAddressCharacter = CodecError("address contains an invalid character")
	InvalidAmount           = InvalidError("amount is invalid")
	InvalidCount            = InvalidError("count is invalid")
	InvalidCursor           = InvalidError("cursor is invalid")
	InvalidIpAddress        = InvalidError("invalid IP address")
	InvalidItemHash         = InvalidError("item hash is invalid")
	InvalidItemPath         = InvalidError("item path is invalid")
	InvalidName             = InvalidError("name is invalid")
	InvalidNonce            = InvalidError("nonce is invalid")
	InvalidPrivateKey       = InvalidError("private key is invalid")
	InvalidPublicKey        = InvalidError("public key is invalid")
	InvalidRequest          = InvalidError("request is invalid")
	InvalidStructPointer    = InvalidError("configuration target is not a struct pointer")
	InvalidTransfer         = InvalidError("transfer is invalid")
	InvalidUUID             = CodecError("uuid is invalid")
	ItemHashMismatch        = IntegrityError("item hash does not match its data")
	ItemNotFound            = NotFoundError("item not found")
	LastOwner               = ForbiddenError("cannot remove the last owner")
	MalformedToken          = AuthError("token is malformed")
	MissingAddressMarker    = CodecError("address marker is missing")
	MissingFilter           = InvalidError("neither address nor name was supplied")
	MissingParameters       = InvalidError("missing parameters")
	MissingToken            = AuthError("authorization token is missing")
	NotController           = ForbiddenError("key does not control the address")
	NotInitialised          = ProcessError("not initialised")
	NotPlainFileName        = InvalidError("file name contains a directory")
	OriginMismatch          = AuthError("token origin is not allowed")
	OwnerExpiry             = InvalidError("owner grants cannot expire")
	PayloadTooLarge         = LengthError("payload too large")
	RateLimiting            = InvalidError("rate limiting")
	SignatureMismatch       = IntegrityError("payload signature does not match")
	TokenExpired            = AuthError("token has expired")
	TransferOverflow        = InvalidError("receiver balance would overflow")
	UnrecoverableKey        = AuthError("public key cannot be recovered")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthError) Error() string      { return string(e) }
func (e CodecError) Error() string     { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e ForbiddenError) Error() string { return string(e) }
func (e FundsError) Error() string     { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrAuth(e error) bool      { var x AuthError; return errors.As(e, &x) }
func IsErrCodec(e error) bool     { var x CodecError; return errors.As(e, &x) }
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrForbidden(e error) bool { var x ForbiddenError; return errors.As(e, &x) }
func IsErrFunds(e error) bool     { var x FundsError; return errors.As(e, &x) }
func IsErrIntegrity(e error) bool { var x IntegrityError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool    { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
