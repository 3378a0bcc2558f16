// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// github.com/bitmark-inc/go-argon2 is a cgo binding for libargon2,
// so this hasher is only available when cgo is enabled

//go:build cgo
// +build cgo

package chaindigest

import (
	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// internal hashing parameters
const (
	argon2Mode        = argon2.ModeArgon2d
	argon2Memory      = 1 << 17 // 128 MiB
	argon2Parallelism = 1
	argon2Iterations  = 4
	argon2Version     = argon2.Version13
)

// Argon2 - memory intensive Argon2d hasher
//
// retained for byte-for-byte interoperability testing against
// ledgers written with the Argon2d link digest
type Argon2 struct{}

// Hash - compute an Argon2d digest of a record
//
// the record itself is used as the salt so the digest stays a pure
// function of the record content
func (Argon2) Hash(record []byte) (Digest, error) {
	if 0 == len(record) {
		return Digest{}, fault.ErrEmptyDigestInput
	}

	context := &argon2.Context{
		Iterations:  argon2Iterations,
		Memory:      argon2Memory,
		Parallelism: argon2Parallelism,
		HashLen:     Length,
		Mode:        argon2Mode,
		Version:     argon2Version,
	}

	hash, err := argon2.Hash(context, record, record)
	if nil != err {
		return Digest{}, err
	}

	var digest Digest
	copy(digest[:], hash)
	return digest, nil
}
