// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"net/http"
)

// Status - the client facing class of a result
type Status int

// the possible status values
const (
	StatusOK Status = iota
	StatusBadRequest
	StatusUnauthorized
	StatusNotFound
	StatusPayloadTooLarge
	StatusAlreadyReported
	StatusInternal
)

var statusText = map[Status]string{
	StatusOK:              "OK",
	StatusBadRequest:      "BadRequest",
	StatusUnauthorized:    "Unauthorized",
	StatusNotFound:        "NotFound",
	StatusPayloadTooLarge: "PayloadTooLarge",
	StatusAlreadyReported: "AlreadyReported",
	StatusInternal:        "Internal",
}

var statusCode = map[Status]int{
	StatusOK:              http.StatusOK,
	StatusBadRequest:      http.StatusBadRequest,
	StatusUnauthorized:    http.StatusUnauthorized,
	StatusNotFound:        http.StatusNotFound,
	StatusPayloadTooLarge: http.StatusRequestEntityTooLarge,
	StatusAlreadyReported: http.StatusAlreadyReported,
	StatusInternal:        http.StatusInternalServerError,
}

// StatusOf - map an error to the status a transport should report
//
// unclassified errors are internal failures
func StatusOf(err error) Status {
	switch {
	case nil == err:
		return StatusOK
	case IsErrAuth(err):
		return StatusUnauthorized
	case IsErrLength(err):
		return StatusPayloadTooLarge
	case IsErrExists(err):
		return StatusAlreadyReported
	case IsErrNotFound(err):
		return StatusNotFound
	case IsErrCodec(err), IsErrIntegrity(err), IsErrForbidden(err), IsErrFunds(err), IsErrInvalid(err):
		return StatusBadRequest
	default:
		return StatusInternal
	}
}

// Code - numeric HTTP status code
func (s Status) Code() int {
	if c, ok := statusCode[s]; ok {
		return c
	}
	return http.StatusInternalServerError
}

func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return "Internal"
}
