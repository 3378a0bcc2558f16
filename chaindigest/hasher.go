// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindigest

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// Hasher - the digest algorithm contract
//
// must be deterministic: the same record always yields the same
// digest; the chain only ever tests digests for equality
type Hasher interface {
	Hash(record []byte) (Digest, error)
}

// SHA3 - the standard 256 bit hasher
type SHA3 struct{}

// Default - hasher used by NewDigest and by stores that do not
// inject their own
var Default Hasher = SHA3{}

// Hash - compute a SHA3-256 digest of a record
func (SHA3) Hash(record []byte) (Digest, error) {
	if 0 == len(record) {
		return Digest{}, fault.ErrEmptyDigestInput
	}
	return Digest(sha3.Sum256(record)), nil
}
