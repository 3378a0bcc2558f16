// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindigest

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// number of bytes in the digest
const Length = 32

// type for a digest
// represented as hex value for print and JSON encoding
type Digest [Length]byte

// Zero - the all-zero digest used as the genesis link value
var Zero Digest

// create a digest from a byte slice using the package default hasher
func NewDigest(record []byte) Digest {
	digest, err := Default.Hash(record)
	logger.PanicIfError("chaindigest.NewDigest", err)
	return digest
}

// IsZero - true if the digest is the all-zero genesis link value
func (digest Digest) IsZero() bool {
	return Zero == digest
}

// convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if hex.EncodedLen(Length) != len(token) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	_, err = hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	copy(digest[:], buffer)
	return nil
}

// convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer)
	return nil
}

// convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}
