// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"os"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// Flush - write the entire in-memory chain to the storage file
//
// the file is overwritten; a failure part way leaves it in an
// indeterminate state and the caller must retry or restore from a
// backup
func (s *Store) Flush() error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	if !s.writable {
		return fault.ErrNotWritable
	}

	f, err := os.OpenFile(s.storageFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return s.fail(fault.ErrCannotOpenFile, "flush: open %q: %s", s.storageFile, err)
	}
	defer f.Close()

	for i := 0; i < len(s.chain); i += 1 {
		packed, err := s.chain[i].Pack()
		if nil != err {
			return s.fail(err, "flush: cannot pack block %d: %s", s.chain[i].Number, err)
		}
		n, err := f.Write(packed[:])
		if nil != err {
			return s.fail(fault.ErrCannotWriteFile, "flush: write block %d: %s", s.chain[i].Number, err)
		}
		if chainrecord.TotalRecordSize != n {
			return s.fail(fault.ErrWriteWasShort,
				"flush: block %d wrote %d of %d bytes", s.chain[i].Number, n, chainrecord.TotalRecordSize)
		}
	}

	err = f.Sync()
	if nil != err {
		return s.fail(fault.ErrCannotWriteFile, "flush: sync %q: %s", s.storageFile, err)
	}

	s.state = Flushed
	s.log.Infof("flush: %d blocks", len(s.chain))
	return nil
}
