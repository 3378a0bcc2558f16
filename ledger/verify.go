// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// Verify - read-only structural integrity check
//
// visits blocks in ascending order so the reported index is always
// the earliest structurally broken block; returns that index with
// ErrDigestMismatch or ErrLinkBroken, or zero and nil when valid
func (s *Store) Verify() (uint64, error) {
	if Uninitialised == s.state {
		return 0, fault.ErrNotInitialised
	}
	badIndex, err := verifyChain(s.chain, s.hasher)
	if nil != err {
		s.lastError = err.Error()
	}
	return badIndex, err
}

// check every record digest and every predecessor link
func verifyChain(chain []chainrecord.Record, hasher chaindigest.Hasher) (uint64, error) {
	for i := 0; i < len(chain); i += 1 {
		record := &chain[i]

		digest, err := record.ComputeDigest(hasher)
		if nil != err {
			return uint64(i), err
		}
		if digest != record.Digest {
			return uint64(i), fault.ErrDigestMismatch
		}

		if 0 == i {
			if !record.PreviousBlock.IsZero() {
				return 0, fault.ErrLinkBroken
			}
		} else if record.PreviousBlock != chain[i-1].Digest {
			return uint64(i), fault.ErrLinkBroken
		}
	}
	return 0, nil
}

// Repair - destructive recomputation restoring structural consistency
//
// walks the chain in ascending order relinking each record to its
// (already corrected) predecessor and then recomputing its digest;
// the digest covers the link, so the link must be fixed first or the
// repaired chain would not verify.  repair restores consistency
// only: whatever caused the corruption is not recovered
func (s *Store) Repair() error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	if !s.writable {
		return fault.ErrNotWritable
	}

	for i := 0; i < len(s.chain); i += 1 {
		record := &s.chain[i]

		if 0 == i {
			record.PreviousBlock = chaindigest.Digest{}
		} else {
			record.PreviousBlock = s.chain[i-1].Digest
		}

		digest, err := record.ComputeDigest(s.hasher)
		if nil != err {
			return s.fail(err, "repair: digest of block %d: %s", record.Number, err)
		}
		record.Digest = digest
	}

	s.fields.Flush()
	if len(s.chain) > 0 {
		s.state = Modified
	}
	s.log.Infof("repair: %d blocks", len(s.chain))
	return nil
}
