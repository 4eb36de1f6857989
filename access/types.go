// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"strings"

	"github.com/comn-io/comnd/fault"
)

// AccessType - the kind of access a grant gives
type AccessType uint8

// the access types, zero is not a valid type
const (
	Owner AccessType = iota + 1
	Admin
	Editor
	Reader
	Writer
)

var accessNames = map[AccessType]string{
	Owner:  "owner",
	Admin:  "admin",
	Editor: "editor",
	Reader: "reader",
	Writer: "writer",
}

// ParseAccessType - case insensitive type name
func ParseAccessType(s string) (AccessType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range accessNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fault.InvalidAccessType
}

// Valid - true for the defined types
func (t AccessType) Valid() bool {
	_, ok := accessNames[t]
	return ok
}

func (t AccessType) String() string {
	if name, ok := accessNames[t]; ok {
		return name
	}
	return "invalid"
}

// MarshalText - type name
func (t AccessType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fault.InvalidAccessType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - type from name
func (t *AccessType) UnmarshalText(s []byte) error {
	a, err := ParseAccessType(string(s))
	if nil != err {
		return err
	}
	*t = a
	return nil
}

// Levels - a set of access types
type Levels uint8

// common sets of required levels
var (
	Manage = LevelsOf(Owner, Admin)
	Write  = LevelsOf(Owner, Admin, Editor, Writer)
	Read   = LevelsOf(Owner, Admin, Editor, Reader, Writer)
)

// LevelsOf - the set of the given types
func LevelsOf(types ...AccessType) Levels {
	l := Levels(0)
	for _, t := range types {
		if t.Valid() {
			l |= 1 << t
		}
	}
	return l
}

// Has - membership test
func (l Levels) Has(t AccessType) bool {
	return t.Valid() && 0 != l&(1<<t)
}
