// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/fixtures"
)

var now = time.Unix(1700000000, 0)

func TestTokenRecover(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)

	token, err := auth.NewToken(key, fixtures.Origin, []string{"transaction", "crate_read"}, time.Minute, now.Add(-2*time.Second))
	assert.Nil(t, err, "new token")
	assert.Equal(t, "transaction,crate_read", token.Scope, "scope")
	assert.Equal(t, uint64(60), token.ValidSecs, "valid seconds")
	assert.Equal(t, now.Unix()-2, token.Created, "created is backdated")
	assert.True(t, token.RecoveryID.Valid(), "recovery id")
	assert.Equal(t, 128, len(token.Signature), "hex of r ‖ s")

	pub, err := token.Recover()
	assert.Nil(t, err, "recover")
	assert.Equal(t, key.PubKey().SerializeCompressed(), pub.SerializeCompressed(), "recovered key")
}

func TestTokenTamper(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)

	token, err := auth.NewToken(key, fixtures.Origin, []string{"transaction"}, time.Minute, now)
	assert.Nil(t, err, "new token")

	// any change to the fields yields a different key or none at all
	tampered := *token
	tampered.ValidSecs = 1000000
	pub, err := tampered.Recover()
	if nil == err {
		assert.NotEqual(t, key.PubKey().SerializeCompressed(), pub.SerializeCompressed(), "tampered token must not recover the signer")
	}

	tampered = *token
	tampered.Signature = "00"
	_, err = tampered.Recover()
	assert.Equal(t, fault.BadSignature, err, "short signature")

	tampered = *token
	tampered.Signature = strings.Repeat("zz", 64)
	_, err = tampered.Recover()
	assert.Equal(t, fault.BadSignature, err, "non hex signature")

	tampered = *token
	tampered.RecoveryID = 7
	_, err = tampered.Recover()
	assert.Equal(t, fault.BadSignature, err, "recovery id out of range")
}

func TestTokenExpiry(t *testing.T) {
	token := auth.Token{
		Created:   now.Unix(),
		ValidSecs: 10,
	}

	items := []struct {
		at      time.Time
		expired bool
	}{
		{now.Add(-time.Hour), false},
		{now, false},
		{now.Add(10 * time.Second), false},
		{now.Add(11 * time.Second), true},
		{now.Add(time.Hour), true},
	}

	for i, item := range items {
		assert.Equal(t, item.expired, token.Expired(item.at), "%d: expired at %v", i, item.at)
	}

	// extreme values must not wrap around
	ancient := auth.Token{Created: -1 << 63, ValidSecs: 1 << 62}
	assert.True(t, ancient.Expired(now), "ancient token")
	forever := auth.Token{Created: now.Unix(), ValidSecs: 1<<64 - 1}
	assert.False(t, forever.Expired(now.Add(1000000*time.Hour)), "long lived token")
}

func TestTokenScopes(t *testing.T) {
	items := []struct {
		scope  string
		scopes []string
	}{
		{"transaction", []string{"transaction"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{"b,a", []string{"b", "a"}},
		{"", []string{""}},
		{"a,,b", []string{"a", "", "b"}},
	}
	for i, item := range items {
		token := auth.Token{Scope: item.scope}
		assert.Equal(t, item.scopes, token.Scopes(), "%d: scopes of %q", i, item.scope)
	}
}

func TestTokenHeader(t *testing.T) {
	key := auth.PrivateKeyFromSeed(fixtures.OwnerSeed)

	token, err := auth.NewToken(key, fixtures.Origin, []string{"transaction"}, time.Minute, now)
	assert.Nil(t, err, "new token")

	header, err := token.Header()
	assert.Nil(t, err, "header")
	assert.True(t, strings.HasPrefix(header, "COMN {"), "scheme prefix")

	fields := map[string]interface{}{}
	err = json.Unmarshal([]byte(header[len("COMN "):]), &fields)
	assert.Nil(t, err, "json body")
	for _, name := range []string{"origin", "scope", "valid_secs", "created", "signature", "recid"} {
		_, ok := fields[name]
		assert.True(t, ok, "field: %s", name)
	}

	parsed, err := auth.ParseHeader(header)
	assert.Nil(t, err, "parse header")
	assert.Equal(t, token, parsed, "parsed token")
}

func TestParseHeaderErrors(t *testing.T) {
	items := []struct {
		header string
		err    error
	}{
		{"", fault.MissingToken},
		{"   ", fault.MissingToken},
		{"Bearer abc", fault.BadScheme},
		{"COMN", fault.BadScheme},
		{"COMN {", fault.MalformedToken},
		{`COMN {"recid":9}`, fault.MalformedToken},
		{`COMN {"recid":-1}`, fault.MalformedToken},
	}
	for i, item := range items {
		_, err := auth.ParseHeader(item.header)
		assert.Equal(t, item.err, err, "%d: header %q", i, item.header)
	}
}

func TestSignWithoutKey(t *testing.T) {
	_, err := auth.NewToken(nil, fixtures.Origin, nil, time.Minute, now)
	assert.Equal(t, fault.InvalidPrivateKey, err, "token")

	_, err = auth.Protect(nil, `{"amount":1}`)
	assert.Equal(t, fault.InvalidPrivateKey, err, "protected request")
}
