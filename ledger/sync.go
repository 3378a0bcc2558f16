// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// Sync - replace the in-memory chain with the storage file content
//
// all-or-nothing: on any failure the previously held chain is
// discarded and the instance reverts to an empty chain; sync never
// installs a partially valid chain
func (s *Store) Sync() error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}

	data, err := ioutil.ReadFile(s.storageFile)
	if os.IsNotExist(err) {
		// a missing storage file is a legitimate empty chain
		s.chain = nil
		s.fields.Flush()
		s.state = Synced
		s.log.Infof("sync: %q not present, chain is empty", s.storageFile)
		return nil
	}
	if nil != err {
		return s.fail(fault.ErrCannotReadFile, "sync: read %q: %s", s.storageFile, err)
	}

	if 0 != len(data)%chainrecord.TotalRecordSize {
		return s.fail(fault.ErrCorruptStorageSize,
			"sync: %q length %d is not a multiple of the record size %d",
			s.storageFile, len(data), chainrecord.TotalRecordSize)
	}

	count := len(data) / chainrecord.TotalRecordSize
	incoming := make([]chainrecord.Record, 0, count)
	for i := 0; i < count; i += 1 {
		packed := chainrecord.PackedRecord{}
		copy(packed[:], data[i*chainrecord.TotalRecordSize:])
		record, err := packed.Unpack()
		if nil != err {
			return s.fail(err, "sync: cannot decode record %d: %s", i, err)
		}
		incoming = append(incoming, *record)
	}

	if badIndex, err := verifyChain(incoming, s.hasher); nil != err {
		s.chain = nil
		s.fields.Flush()
		return s.fail(err, "sync: chain invalid at block %d: %s", badIndex, err)
	}

	s.chain = incoming
	s.fields.Flush()
	s.state = Synced
	s.log.Infof("sync: %d blocks", count)
	return nil
}
