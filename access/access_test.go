// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comn-io/comnd/access"
	"github.com/comn-io/comnd/address"
	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/fault"
	"github.com/comn-io/comnd/fixtures"
	"github.com/comn-io/comnd/storage"
)

var (
	ownerKey    = auth.PrivateKeyFromSeed(fixtures.OwnerSeed).PubKey()
	otherKey    = auth.PrivateKeyFromSeed(fixtures.OtherSeed).PubKey()
	strangerKey = auth.PrivateKeyFromSeed(fixtures.StrangerSeed).PubKey()

	// ≈A and ≈C
	addressA = address.FromUint128(0, 10)
	addressB = address.FromUint128(0, 11)
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func setup(t *testing.T) (*access.Resolver, *storage.Store, *testClock) {
	fixtures.SetupTestLogger()

	store, err := storage.OpenMemory(logger.New(fixtures.LogCategory))
	require.NoError(t, err, "open memory store")

	clock := &testClock{now: time.Unix(1700000000, 0)}
	r := access.New(logger.New(fixtures.LogCategory), store, access.Configuration{
		MaximumItem: 64,
		Clock:       clock.Now,
	})

	t.Cleanup(func() {
		store.Close()
		fixtures.TeardownTestLogger()
	})
	return r, store, clock
}

// create a fixed address controlled by a key
func controlled(t *testing.T, r *access.Resolver, a address.Address, key *btcec.PublicKey) {
	_, err := r.CreateAddress(a, "")
	require.NoError(t, err, "create address")
	require.NoError(t, r.AttachKey(a, key), "attach key")
}

func as(key *btcec.PublicKey) access.Caller {
	return access.Caller{Key: key}
}

// an item whose hash matches its data
func newItem(path string, mediaType string, data string) *access.NewItem {
	digest := sha256.Sum256([]byte(data))
	return &access.NewItem{
		Path:      path,
		MediaType: mediaType,
		Hash:      digest[:],
		Data:      json.RawMessage(data),
	}
}

func TestRegister(t *testing.T) {
	r, _, _ := setup(t)

	record, err := r.Register(ownerKey, "alice")
	require.NoError(t, err, "register")
	assert.False(t, address.IsWellKnown(record.Address), "well-known address minted")
	assert.Equal(t, []string{auth.PublicKeyHex(ownerKey)}, record.Keys, "keys")

	ok, err := r.Controls(ownerKey, record.Address)
	assert.NoError(t, err, "controls")
	assert.True(t, ok, "owner key does not control")

	ok, err = r.Controls(otherKey, record.Address)
	assert.NoError(t, err, "controls")
	assert.False(t, ok, "other key controls")

	_, err = r.Register(nil, "")
	assert.Equal(t, fault.InvalidPublicKey, err, "nil key")

	_, err = r.Register(ownerKey, "bad\x00name")
	assert.Equal(t, fault.InvalidName, err, "NUL in name")
}

func TestCreateAddress(t *testing.T) {
	r, _, _ := setup(t)

	_, err := r.CreateAddress(addressA, "a")
	require.NoError(t, err, "create")

	_, err = r.CreateAddress(addressA, "again")
	assert.Equal(t, fault.AlreadyRegistered, err, "duplicate")

	_, err = r.CreateAddress(address.Public, "")
	assert.Equal(t, fault.AlreadyRegistered, err, "well-known")

	ok, err := r.Exists(address.Registered)
	assert.NoError(t, err, "exists")
	assert.True(t, ok, "well-known does not exist")

	ok, err = r.Exists(addressB)
	assert.NoError(t, err, "exists")
	assert.False(t, ok, "unregistered exists")

	assert.Equal(t, fault.AddressNotFound, r.AttachKey(addressB, ownerKey), "attach to missing")
}

func TestAddKey(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)

	err := r.AddKey(as(strangerKey), addressA, otherKey)
	assert.Equal(t, fault.NotController, err, "stranger adds key")

	err = r.AddKey(access.Anonymous, addressA, otherKey)
	assert.Equal(t, fault.MissingToken, err, "anonymous adds key")

	err = r.AddKey(as(ownerKey), addressA, otherKey)
	require.NoError(t, err, "owner adds key")

	addresses, err := r.Addresses(otherKey)
	assert.NoError(t, err, "addresses")
	assert.Equal(t, []address.Address{addressA}, addresses, "other key addresses")
}

func TestLookup(t *testing.T) {
	r, _, _ := setup(t)

	_, err := r.CreateAddress(addressA, "shared")
	require.NoError(t, err, "create a")
	_, err = r.CreateAddress(addressB, "shared")
	require.NoError(t, err, "create b")
	require.NoError(t, r.AttachKey(addressB, ownerKey), "attach")

	records, err := r.Lookup(access.NameFilter("shared"))
	require.NoError(t, err, "by name")
	require.Len(t, records, 2, "name matches")
	assert.Equal(t, addressA, records[0].Address, "first")
	assert.Equal(t, addressB, records[1].Address, "second")

	records, err = r.Lookup(access.AddressFilter(addressB))
	require.NoError(t, err, "by address")
	assert.Equal(t, []string{auth.PublicKeyHex(ownerKey)}, records[0].Keys, "keys")

	records, err = r.Lookup(access.KeyFilter(ownerKey))
	require.NoError(t, err, "by key")
	require.Len(t, records, 1, "key matches")
	assert.Equal(t, "shared", records[0].Name, "name")

	_, err = r.Lookup(access.NameFilter("nobody"))
	assert.Equal(t, fault.AddressNotFound, err, "unknown name")

	_, err = r.Lookup(access.AddressFilter(address.FromUint128(0, 99)))
	assert.Equal(t, fault.AddressNotFound, err, "unknown address")

	_, err = access.NewFilter(nil, "")
	assert.Equal(t, fault.MissingFilter, err, "empty filter")

	f, err := access.NewFilter(&addressA, "shared")
	assert.NoError(t, err, "filter")
	assert.Equal(t, access.ByAddress, f.Kind(), "address wins")
}

func TestCrateAccessSequence(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	_, err = r.Grant(as(ownerKey), crate.ID, address.Registered, access.Writer, nil)
	assert.NoError(t, err, "grant writer to registered")

	err = r.Revoke(as(ownerKey), crate.ID, addressA, access.Owner)
	assert.Equal(t, fault.LastOwner, err, "revoke last owner")

	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.Owner, nil)
	assert.NoError(t, err, "grant second owner")

	err = r.Revoke(as(ownerKey), crate.ID, addressB, access.Owner)
	assert.NoError(t, err, "revoke second owner")

	grants, err := r.Grants(as(ownerKey), crate.ID)
	require.NoError(t, err, "grants")
	assert.Len(t, grants, 2, "owner and writer remain")
}

func TestCreateCrate(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)

	_, err := r.CreateCrate(as(otherKey), addressA, "notes", "", nil)
	assert.Equal(t, fault.NotController, err, "not controller")

	_, err = r.CreateCrate(access.Anonymous, addressA, "notes", "", nil)
	assert.Equal(t, fault.MissingToken, err, "anonymous")

	_, err = r.CreateCrate(as(ownerKey), addressA, "", "", nil)
	assert.Equal(t, fault.InvalidName, err, "empty name")

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create")
	assert.Equal(t, addressA, crate.Owner, "owner")

	_, err = r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	assert.Equal(t, fault.CrateExists, err, "duplicate name")

	id, err := r.FindCrate(addressA, "notes")
	assert.NoError(t, err, "find")
	assert.Equal(t, crate.ID, id, "found id")

	stored, err := r.Crate(crate.ID)
	require.NoError(t, err, "read")
	assert.Equal(t, "notes", stored.Name, "name")

	_, err = r.FindCrate(addressA, "other")
	assert.Equal(t, fault.CrateNotFound, err, "missing name")
}

func TestCheck(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	_, err = r.Check(access.Anonymous, crate.ID, access.Read)
	assert.Equal(t, fault.Forbidden, err, "anonymous read")

	_, err = r.Check(as(otherKey), crate.ID, access.Read)
	assert.Equal(t, fault.Forbidden, err, "other read")

	_, err = r.Grant(as(ownerKey), crate.ID, address.Public, access.Reader, nil)
	require.NoError(t, err, "grant public reader")

	grants, err := r.Check(access.Anonymous, crate.ID, access.Read)
	require.NoError(t, err, "anonymous read")
	assert.Equal(t, address.Public, grants[0].Address, "via public")

	_, err = r.Check(access.Anonymous, crate.ID, access.Write)
	assert.Equal(t, fault.Forbidden, err, "anonymous write")

	// a claimed address must be controlled by the key
	_, err = r.Check(access.Caller{Key: otherKey, Address: &addressA}, crate.ID, access.Read)
	assert.Equal(t, fault.NotController, err, "claimed foreign address")

	// a claimed address excludes the key's other addresses
	require.NoError(t, r.AttachKey(addressB, ownerKey), "attach")
	_, err = r.Check(access.Caller{Key: ownerKey, Address: &addressB}, crate.ID, access.Manage)
	assert.Equal(t, fault.Forbidden, err, "claimed non-owner")

	_, err = r.Check(access.Caller{Key: ownerKey, Address: &addressA}, crate.ID, access.Manage)
	assert.NoError(t, err, "claimed owner")

	_, err = r.Check(as(ownerKey), crate.ID, access.Manage)
	assert.NoError(t, err, "all addresses")

	_, err = r.Check(as(ownerKey), address.Random().UUID(), access.Read)
	assert.Equal(t, fault.CrateNotFound, err, "missing crate")
}

func TestGrantRules(t *testing.T) {
	r, _, clock := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	later := clock.now.Add(time.Hour)
	earlier := clock.now.Add(-time.Hour)

	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.Owner, &later)
	assert.Equal(t, fault.OwnerExpiry, err, "owner with expiry")

	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.Reader, &earlier)
	assert.Equal(t, fault.InvalidRequest, err, "expiry in the past")

	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.AccessType(0), nil)
	assert.Equal(t, fault.InvalidAccessType, err, "invalid type")

	_, err = r.Grant(as(ownerKey), crate.ID, address.FromUint128(0, 99), access.Reader, nil)
	assert.Equal(t, fault.AddressNotFound, err, "unknown target")

	_, err = r.Grant(as(otherKey), crate.ID, addressB, access.Admin, nil)
	assert.Equal(t, fault.Forbidden, err, "non-manager grants")

	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.Editor, nil)
	require.NoError(t, err, "grant editor")

	_, err = r.Grant(as(otherKey), crate.ID, addressB, access.Admin, nil)
	assert.Equal(t, fault.Forbidden, err, "editor grants")

	err = r.Revoke(as(ownerKey), crate.ID, addressB, access.Reader)
	assert.Equal(t, fault.GrantNotFound, err, "revoke missing")

	err = r.Revoke(as(otherKey), crate.ID, addressB, access.Editor)
	assert.Equal(t, fault.Forbidden, err, "editor revokes")
}

func TestExpiry(t *testing.T) {
	r, _, clock := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	expires := clock.now.Add(time.Minute)
	_, err = r.Grant(as(ownerKey), crate.ID, addressB, access.Reader, &expires)
	require.NoError(t, err, "grant reader")

	crates, err := r.CratesFor(as(otherKey), access.Read)
	require.NoError(t, err, "crates for")
	assert.Len(t, crates, 1, "visible before expiry")

	clock.Advance(time.Minute)

	_, err = r.Check(as(otherKey), crate.ID, access.Read)
	assert.Equal(t, fault.Forbidden, err, "read after expiry")

	crates, err = r.CratesFor(as(otherKey), access.Read)
	require.NoError(t, err, "crates for")
	assert.Len(t, crates, 0, "visible after expiry")

	n, err := r.PurgeExpired()
	assert.NoError(t, err, "purge")
	assert.Equal(t, 1, n, "purged")

	n, err = r.PurgeExpired()
	assert.NoError(t, err, "purge again")
	assert.Equal(t, 0, n, "nothing left")

	grants, err := r.Grants(as(ownerKey), crate.ID)
	require.NoError(t, err, "grants")
	assert.Len(t, grants, 1, "only the owner")
}

func TestCratesFor(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	first, err := r.CreateCrate(as(ownerKey), addressA, "first", "", nil)
	require.NoError(t, err, "create first")
	_, err = r.CreateCrate(as(otherKey), addressB, "second", "", nil)
	require.NoError(t, err, "create second")

	_, err = r.Grant(as(ownerKey), first.ID, addressB, access.Writer, nil)
	require.NoError(t, err, "grant")
	_, err = r.Grant(as(ownerKey), first.ID, address.Registered, access.Reader, nil)
	require.NoError(t, err, "grant")

	crates, err := r.CratesFor(as(otherKey), access.Read)
	require.NoError(t, err, "other read")
	assert.Len(t, crates, 2, "own crate and shared crate without duplicates")

	crates, err = r.CratesFor(as(otherKey), access.Manage)
	require.NoError(t, err, "other manage")
	require.Len(t, crates, 1, "manage")
	assert.Equal(t, "second", crates[0].Name, "own crate")

	crates, err = r.CratesFor(as(strangerKey), access.Read)
	require.NoError(t, err, "stranger")
	require.Len(t, crates, 1, "via registered")
	assert.Equal(t, first.ID, crates[0].ID, "shared crate")

	crates, err = r.CratesFor(access.Anonymous, access.Read)
	require.NoError(t, err, "anonymous")
	assert.Len(t, crates, 0, "anonymous")
}

func TestItems(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)
	controlled(t, r, addressB, otherKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	_, err = r.PutItem(as(otherKey), crate.ID, newItem("/x", "application/json", `1`))
	assert.Equal(t, fault.Forbidden, err, "write without grant")

	_, err = r.Grant(as(ownerKey), crate.ID, address.Registered, access.Writer, nil)
	require.NoError(t, err, "grant")

	for _, path := range []string{"/c", "/a", "/b"} {
		item, err := r.PutItem(as(otherKey), crate.ID, newItem(path, "application/json", `"`+path+`"`))
		require.NoError(t, err, "put %s", path)
		assert.Equal(t, address.Registered, item.AddedBy, "added by")
	}

	item, err := r.PutItem(as(ownerKey), crate.ID, newItem("/a", "text/plain", `"replaced"`))
	require.NoError(t, err, "replace")
	assert.Equal(t, addressA, item.AddedBy, "real address preferred")

	_, err = r.PutItem(as(ownerKey), crate.ID, newItem("no-slash", "text/plain", `1`))
	assert.Equal(t, fault.InvalidItemPath, err, "bad path")

	big := make([]byte, 65)
	for i := range big {
		big[i] = '1'
	}
	_, err = r.PutItem(as(ownerKey), crate.ID, newItem("/big", "text/plain", string(big)))
	assert.Equal(t, fault.PayloadTooLarge, err, "too large")

	// any key is registered so the writer grant covers reads too
	item, err = r.Item(as(strangerKey), crate.ID, "/a")
	require.NoError(t, err, "registered reads")
	assert.Equal(t, "/a", item.Path, "registered reads")

	// anonymous callers only see public grants
	_, err = r.Item(access.Anonymous, crate.ID, "/a")
	assert.Equal(t, fault.Forbidden, err, "anonymous reads")

	item, err = r.Item(as(ownerKey), crate.ID, "/a")
	require.NoError(t, err, "read")
	assert.Equal(t, `"replaced"`, string(item.Data), "data")

	_, err = r.Item(as(ownerKey), crate.ID, "/missing")
	assert.Equal(t, fault.ItemNotFound, err, "missing item")

	page, err := r.Items(as(ownerKey), crate.ID, "", 2)
	require.NoError(t, err, "first page")
	require.Len(t, page, 2, "first page")
	assert.Equal(t, "/a", page[0].Path, "first")
	assert.Equal(t, "/b", page[1].Path, "second")

	page, err = r.Items(as(ownerKey), crate.ID, page[1].Path, 2)
	require.NoError(t, err, "second page")
	require.Len(t, page, 1, "second page")
	assert.Equal(t, "/c", page[0].Path, "third")

	_, err = r.Items(as(ownerKey), crate.ID, "", 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestItemHash(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)

	crate, err := r.CreateCrate(as(ownerKey), addressA, "notes", "", nil)
	require.NoError(t, err, "create crate")

	n := newItem("/a", "application/json", `{"x":1}`)
	n.Scope = "photos"
	item, err := r.PutItem(as(ownerKey), crate.ID, n)
	require.NoError(t, err, "matching hash")
	assert.Equal(t, hex.EncodeToString(n.Hash), item.Hash, "stored hash")
	assert.Equal(t, "photos", item.Scope, "stored scope")

	stored, err := r.Item(as(ownerKey), crate.ID, "/a")
	require.NoError(t, err, "read")
	assert.Equal(t, "photos", stored.Scope, "scope kept")
	assert.Equal(t, item.Hash, stored.Hash, "hash kept")

	n = newItem("/b", "application/json", `{"x":1}`)
	n.Data = json.RawMessage(`{"x":2}`)
	_, err = r.PutItem(as(ownerKey), crate.ID, n)
	assert.Equal(t, fault.ItemHashMismatch, err, "changed data")

	n = newItem("/b", "application/json", `{"x":1}`)
	n.Hash = n.Hash[:16]
	_, err = r.PutItem(as(ownerKey), crate.ID, n)
	assert.Equal(t, fault.InvalidItemHash, err, "short hash")

	n.Hash = nil
	_, err = r.PutItem(as(ownerKey), crate.ID, n)
	assert.Equal(t, fault.InvalidItemHash, err, "missing hash")

	_, err = r.Item(as(ownerKey), crate.ID, "/b")
	assert.Equal(t, fault.ItemNotFound, err, "nothing stored")
}

func TestCrateExpiry(t *testing.T) {
	r, _, clock := setup(t)
	controlled(t, r, addressA, ownerKey)

	past := clock.now
	_, err := r.CreateCrate(as(ownerKey), addressA, "drafts", "", &past)
	assert.Equal(t, fault.InvalidRequest, err, "expiry not in the future")

	expires := clock.now.Add(time.Hour)
	crate, err := r.CreateCrate(as(ownerKey), addressA, "drafts", "scratch space", &expires)
	require.NoError(t, err, "create")
	assert.Equal(t, "scratch space", crate.Comment, "comment")
	require.NotNil(t, crate.Expires, "expiry")

	_, err = r.PutItem(as(ownerKey), crate.ID, newItem("/a", "text/plain", `1`))
	require.NoError(t, err, "put before expiry")

	stored, err := r.Crate(crate.ID)
	require.NoError(t, err, "read before expiry")
	assert.Equal(t, "scratch space", stored.Comment, "stored comment")

	crates, err := r.CratesFor(as(ownerKey), access.Read)
	require.NoError(t, err, "list before expiry")
	assert.Len(t, crates, 1, "listed before expiry")

	clock.Advance(time.Hour)

	_, err = r.Crate(crate.ID)
	assert.Equal(t, fault.CrateNotFound, err, "read after expiry")

	_, err = r.Item(as(ownerKey), crate.ID, "/a")
	assert.Equal(t, fault.CrateNotFound, err, "item after expiry")

	_, err = r.PutItem(as(ownerKey), crate.ID, newItem("/b", "text/plain", `2`))
	assert.Equal(t, fault.CrateNotFound, err, "put after expiry")

	_, err = r.Grants(as(ownerKey), crate.ID)
	assert.Equal(t, fault.CrateNotFound, err, "grants after expiry")

	crates, err = r.CratesFor(as(ownerKey), access.Read)
	require.NoError(t, err, "list after expiry")
	assert.Len(t, crates, 0, "not listed after expiry")

	again, err := r.CreateCrate(as(ownerKey), addressA, "drafts", "", nil)
	require.NoError(t, err, "name is free again")
	assert.NotEqual(t, crate.ID, again.ID, "new crate")

	id, err := r.FindCrate(addressA, "drafts")
	require.NoError(t, err, "find")
	assert.Equal(t, again.ID, id, "name points to the new crate")
}

func TestSystemCrate(t *testing.T) {
	r, _, _ := setup(t)
	controlled(t, r, addressA, ownerKey)

	id, err := r.SystemCrate(address.ComnCoin, addressA.String(), addressA)
	require.NoError(t, err, "create")

	again, err := r.SystemCrate(address.ComnCoin, addressA.String(), addressA)
	require.NoError(t, err, "find")
	assert.Equal(t, id, again, "same crate")

	err = r.AppendItem(id, "/entry", "application/json", json.RawMessage(`{}`))
	require.NoError(t, err, "append")

	item, err := r.Item(as(ownerKey), id, "/entry")
	require.NoError(t, err, "reader reads")
	assert.Equal(t, address.ComnCoin, item.AddedBy, "added by owner")

	_, err = r.PutItem(as(ownerKey), id, newItem("/forged", "application/json", `{}`))
	assert.Equal(t, fault.Forbidden, err, "reader writes")
}
