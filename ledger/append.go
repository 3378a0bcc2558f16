// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// Append - add one record to the in-memory chain
//
// the record links to the current tail, or carries the zero digest
// when the chain is empty (the genesis case); all-or-nothing: either
// the record is present with the number advanced, or the call fails
// and the chain is unchanged; returns the new record's number
func (s *Store) Append(payload []byte) (uint64, error) {
	if Uninitialised == s.state {
		return 0, fault.ErrNotInitialised
	}
	if !s.writable {
		return 0, fault.ErrNotWritable
	}
	if 0 == len(payload) {
		return 0, fault.ErrPayloadIsEmpty
	}
	if len(payload) > chainrecord.PayloadMaxSize {
		return 0, s.fail(fault.ErrPayloadTooLong,
			"append: payload length %d exceeds capacity %d",
			len(payload), chainrecord.PayloadMaxSize)
	}

	number := uint64(0)
	previous := chaindigest.Digest{}
	if n := len(s.chain); n > 0 {
		tail := &s.chain[n-1]
		number = tail.Number + 1
		previous = tail.Digest
	}

	record := chainrecord.Record{
		Number:        number,
		Timestamp:     uint64(time.Now().Unix()),
		PreviousBlock: previous,
		Payload:       append([]byte(nil), payload...),
	}

	digest, err := record.ComputeDigest(s.hasher)
	if nil != err {
		return 0, s.fail(err, "append: digest of block %d: %s", number, err)
	}
	record.Digest = digest

	s.chain = append(s.chain, record)
	s.state = Modified
	s.log.Debugf("append: block %d  payload: %d bytes", number, len(payload))
	return number, nil
}
