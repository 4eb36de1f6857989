// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/patrickmn/go-cache"

	"github.com/comn-io/comnd/fault"
)

const (
	defaultCacheTime    = 5 * time.Minute
	defaultPurgeTime    = 10 * time.Minute
	defaultPayloadLimit = 100000
)

// Identity - the result of a successful token check
type Identity struct {
	PublicKey     *btcec.PublicKey
	Origin        string
	OriginMatched bool
	Scopes        []string
}

// Authenticator - token and payload verification
type Authenticator interface {
	Authenticate(string) (*Identity, error)
	Unwrap(*Identity, *ProtectedRequest) (string, error)
}

// Configuration - verifier settings
type Configuration struct {
	Origins        []string
	MaximumPayload int
	CacheTime      time.Duration
	Clock          func() time.Time
}

// Verifier - checks tokens against the allowed origins
type Verifier struct {
	log            *logger.L
	origins        map[string]struct{}
	maximumPayload int
	now            func() time.Time

	// recovered keys by digest and signature
	keys *cache.Cache
}

// NewVerifier - create a verifier
func NewVerifier(log *logger.L, configuration Configuration) *Verifier {
	origins := make(map[string]struct{}, len(configuration.Origins))
	for _, o := range configuration.Origins {
		origins[o] = struct{}{}
	}

	maximumPayload := configuration.MaximumPayload
	if maximumPayload <= 0 {
		maximumPayload = defaultPayloadLimit
	}

	cacheTime := configuration.CacheTime
	if cacheTime <= 0 {
		cacheTime = defaultCacheTime
	}

	now := configuration.Clock
	if nil == now {
		now = time.Now
	}

	return &Verifier{
		log:            log,
		origins:        origins,
		maximumPayload: maximumPayload,
		now:            now,
		keys:           cache.New(cacheTime, defaultPurgeTime),
	}
}

// Authenticate - verify an authorization header
//
// accepts only when the key is recovered, the origin is allowed and
// the token has not expired
func (v *Verifier) Authenticate(header string) (*Identity, error) {
	token, err := ParseHeader(header)
	if nil != err {
		return nil, err
	}

	key, err := v.recover(token)
	if nil != err {
		v.log.Debugf("recover error: %s", err)
		return nil, err
	}

	if _, ok := v.origins[token.Origin]; !ok {
		v.log.Debugf("origin: %q not allowed", token.Origin)
		return nil, fault.OriginMismatch
	}

	if token.Expired(v.now()) {
		v.log.Debugf("token created: %d valid: %d has expired", token.Created, token.ValidSecs)
		return nil, fault.TokenExpired
	}

	return &Identity{
		PublicKey:     key,
		Origin:        token.Origin,
		OriginMatched: true,
		Scopes:        token.Scopes(),
	}, nil
}

// Unwrap - release the message of a protected request signed by the
// identity's key
func (v *Verifier) Unwrap(identity *Identity, request *ProtectedRequest) (string, error) {
	if nil == identity || nil == identity.PublicKey {
		return "", fault.MissingToken
	}
	if nil == request {
		return "", fault.InvalidRequest
	}
	if len(request.Message) > v.maximumPayload {
		return "", fault.PayloadTooLarge
	}
	return request.Verify(identity.PublicKey)
}

// recovery is the expensive step so repeated use of the same token is
// served from the cache
func (v *Verifier) recover(token *Token) (*btcec.PublicKey, error) {
	digest := token.digest()
	k := hex.EncodeToString(digest[:]) + token.Signature + strconv.Itoa(int(token.RecoveryID))

	if key, found := v.keys.Get(k); found {
		return key.(*btcec.PublicKey), nil
	}

	key, err := token.Recover()
	if nil != err {
		return nil, err
	}
	v.keys.SetDefault(k, key)
	return key, nil
}
