// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/fixtures"
	"github.com/comn-io/comnd/rpc/addresses"
	"github.com/comn-io/comnd/rpc/mocks"
)

const header = "COMN {}"

var (
	ownerKey = auth.PrivateKeyFromSeed(fixtures.OwnerSeed).PubKey()
	otherKey = auth.PrivateKeyFromSeed(fixtures.OtherSeed).PubKey()
	identity = &auth.Identity{PublicKey: ownerKey, Origin: fixtures.Origin, OriginMatched: true}
)

func TestAddressRegister(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	protected := &auth.ProtectedRequest{Message: `{"name":"alice"}`, Proof: "00"}
	record := &access.Record{
		Address: address.FromUint128(0, 10),
		Name:    "alice",
		Keys:    []string{auth.PublicKeyHex(ownerKey)},
		Created: time.Now().UTC(),
	}

	a.EXPECT().Authenticate(header).Return(identity, nil).Times(1)
	a.EXPECT().Unwrap(identity, protected).Return(protected.Message, nil).Times(1)
	r.EXPECT().Register(ownerKey, "alice").Return(record, nil).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	var reply addresses.RecordReply
	err := s.Register(&addresses.RegisterArguments{Authorization: header, Request: protected}, &reply)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, record, reply.Record, "wrong record")
}

func TestAddressRegisterWhenUnauthenticated(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	a.EXPECT().Authenticate(header).Return(nil, fault.OriginMismatch).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	var reply addresses.RecordReply
	err := s.Register(&addresses.RegisterArguments{}, &reply)
	assert.Equal(t, fault.MissingToken, err, "wrong missing token error")

	err = s.Register(&addresses.RegisterArguments{Authorization: header}, &reply)
	assert.Equal(t, fault.OriginMismatch, err, "wrong origin error")
	assert.Nil(t, reply.Record, "record was returned")
}

func TestAddressRegisterWhenPayloadForged(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	protected := &auth.ProtectedRequest{Message: `{"name":"mallory"}`, Proof: "00"}

	a.EXPECT().Authenticate(header).Return(identity, nil).Times(1)
	a.EXPECT().Unwrap(identity, protected).Return("", fault.SignatureMismatch).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	var reply addresses.RecordReply
	err := s.Register(&addresses.RegisterArguments{Authorization: header, Request: protected}, &reply)
	assert.Equal(t, fault.SignatureMismatch, err, "wrong error")
}

func TestAddressAddKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	target := address.FromUint128(0, 10)
	protected := &auth.ProtectedRequest{
		Message: `{"address":"≈a","key":"` + auth.PublicKeyHex(otherKey) + `"}`,
		Proof:   "00",
	}
	record := access.Record{
		Address: target,
		Keys:    []string{auth.PublicKeyHex(ownerKey), auth.PublicKeyHex(otherKey)},
	}

	a.EXPECT().Authenticate(header).Return(identity, nil).Times(1)
	a.EXPECT().Unwrap(identity, protected).Return(protected.Message, nil).Times(1)
	r.EXPECT().AddKey(access.Caller{Key: ownerKey}, target, gomock.Any()).Return(nil).Times(1)
	r.EXPECT().Lookup(access.AddressFilter(target)).Return([]access.Record{record}, nil).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	var reply addresses.RecordReply
	err := s.AddKey(&addresses.AddKeyArguments{Authorization: header, Request: protected}, &reply)
	assert.Nil(t, err, "wrong AddKey")
	assert.Equal(t, &record, reply.Record, "wrong record")
}

func TestAddressAddKeyWhenNotController(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	target := address.FromUint128(0, 11)
	protected := &auth.ProtectedRequest{
		Message: `{"address":"≈C","key":"` + auth.PublicKeyHex(otherKey) + `"}`,
		Proof:   "00",
	}

	a.EXPECT().Authenticate(header).Return(identity, nil).Times(1)
	a.EXPECT().Unwrap(identity, protected).Return(protected.Message, nil).Times(1)
	r.EXPECT().AddKey(access.Caller{Key: ownerKey}, target, gomock.Any()).Return(fault.NotController).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	var reply addresses.RecordReply
	err := s.AddKey(&addresses.AddKeyArguments{Authorization: header, Request: protected}, &reply)
	assert.Equal(t, fault.NotController, err, "wrong error")
}

func TestAddressLookup(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAuthenticator(ctl)
	r := mocks.NewMockRegistry(ctl)

	target := address.FromUint128(0, 10)
	records := []access.Record{{Address: target, Name: "alice"}}

	r.EXPECT().Lookup(access.AddressFilter(target)).Return(records, nil).Times(1)
	r.EXPECT().Lookup(access.NameFilter("alice")).Return(records, nil).Times(1)
	r.EXPECT().Lookup(access.NameFilter("nobody")).Return([]access.Record{}, nil).Times(1)
	r.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(f access.Filter) ([]access.Record, error) {
		assert.Equal(t, access.ByKey, f.Kind(), "wrong filter kind")
		return records, nil
	}).Times(1)

	s := addresses.New(logger.New(fixtures.LogCategory), a, r)

	tests := []struct {
		arguments addresses.LookupArguments
		count     int
	}{
		{addresses.LookupArguments{Address: &target, Name: "ignored"}, 1},
		{addresses.LookupArguments{Name: "alice"}, 1},
		{addresses.LookupArguments{Key: auth.PublicKeyHex(ownerKey)}, 1},
		{addresses.LookupArguments{Name: "nobody"}, 0},
	}

	for i, test := range tests {
		var reply addresses.LookupReply
		err := s.Lookup(&test.arguments, &reply)
		assert.Nil(t, err, "%d: wrong Lookup", i)
		assert.Equal(t, test.count, len(reply.Records), "%d: wrong record count", i)
	}
}

func TestAddressLookupWhenNoFilter(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := addresses.New(logger.New(fixtures.LogCategory), mocks.NewMockAuthenticator(ctl), mocks.NewMockRegistry(ctl))

	var reply addresses.LookupReply
	err := s.Lookup(&addresses.LookupArguments{}, &reply)
	assert.Equal(t, fault.MissingFilter, err, "wrong error")

	err = s.Lookup(&addresses.LookupArguments{Key: "zz"}, &reply)
	assert.True(t, fault.IsErrInvalid(err), "wrong bad key error: %s", err)
}
