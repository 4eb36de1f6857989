// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comn-io/comnd/fault"
)

var (
	ErrAuthOne      = fault.AuthError("auth one")
	ErrCodecOne     = fault.CodecError("codec one")
	ErrExistsOne    = fault.ExistsError("exists one")
	ErrForbiddenOne = fault.ForbiddenError("forbidden one")
	ErrFundsOne     = fault.FundsError("funds one")
	ErrIntegrityOne = fault.IntegrityError("integrity one")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrLengthOne    = fault.LengthError("length one")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrProcessOne   = fault.ProcessError("process one")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	classifiers := []func(error) bool{
		fault.IsErrAuth,
		fault.IsErrCodec,
		fault.IsErrExists,
		fault.IsErrForbidden,
		fault.IsErrFunds,
		fault.IsErrIntegrity,
		fault.IsErrInvalid,
		fault.IsErrLength,
		fault.IsErrNotFound,
		fault.IsErrProcess,
	}
	errorList := []error{
		ErrAuthOne,
		ErrCodecOne,
		ErrExistsOne,
		ErrForbiddenOne,
		ErrFundsOne,
		ErrIntegrityOne,
		ErrInvalidOne,
		ErrLengthOne,
		ErrNotFoundOne,
		ErrProcessOne,
	}

	for i, err := range errorList {
		for j, f := range classifiers {
			assert.Equal(t, i == j, f(err), "%d: classifier %d for err = %v", i, j, err)
		}
	}
}

func TestWrappedClass(t *testing.T) {
	err := fmt.Errorf("lookup: %w", fault.CrateNotFound)
	assert.True(t, fault.IsErrNotFound(err), "wrapped not found")
	assert.False(t, fault.IsErrInvalid(err), "wrapped not found is not invalid")
}

func TestStatusOf(t *testing.T) {
	items := []struct {
		err    error
		status fault.Status
		code   int
	}{
		{nil, fault.StatusOK, http.StatusOK},
		{fault.TokenExpired, fault.StatusUnauthorized, http.StatusUnauthorized},
		{fault.OriginMismatch, fault.StatusUnauthorized, http.StatusUnauthorized},
		{fault.MissingAddressMarker, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.SignatureMismatch, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.ItemHashMismatch, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.Forbidden, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.LastOwner, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.InsufficientFunds, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.MissingFilter, fault.StatusBadRequest, http.StatusBadRequest},
		{fault.PayloadTooLarge, fault.StatusPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{fault.DuplicateNonce, fault.StatusAlreadyReported, http.StatusAlreadyReported},
		{fault.CrateNotFound, fault.StatusNotFound, http.StatusNotFound},
		{fault.DatabaseIsNotSet, fault.StatusInternal, http.StatusInternalServerError},
		{fmt.Errorf("disk on fire"), fault.StatusInternal, http.StatusInternalServerError},
	}

	for i, item := range items {
		s := fault.StatusOf(item.err)
		assert.Equal(t, item.status, s, "%d: status of %v", i, item.err)
		assert.Equal(t, item.code, s.Code(), "%d: code of %v", i, item.err)
	}
	assert.Equal(t, "AlreadyReported", fault.StatusAlreadyReported.String(), "status text")
}
