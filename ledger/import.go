// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"io"
	"os"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// ImportFrom - parse the text form and append its blocks
//
// import loads bytes without trusting them: no re-verification is
// performed, so callers wanting integrity assurance must run Verify
// afterwards.  each completed block is appended as it is parsed; a
// parse failure part way leaves the earlier blocks appended
func (s *Store) ImportFrom(r io.Reader) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	if !s.writable {
		return fault.ErrNotWritable
	}

	count := 0
	decoder := chainrecord.NewTextDecoder(r)
	for {
		record, err := decoder.Next()
		if io.EOF == err {
			break
		}
		if nil != err {
			return s.fail(err, "import: after %d blocks: %s", count, err)
		}
		s.chain = append(s.chain, *record)
		s.state = Modified
		count += 1
	}

	if count > 0 {
		s.fields.Flush()
	}
	s.log.Infof("import: %d blocks", count)
	return nil
}

// Import - parse a text form file and append its blocks
func (s *Store) Import(fileName string) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}

	f, err := os.Open(fileName)
	if nil != err {
		return s.fail(fault.ErrCannotOpenFile, "import: open %q: %s", fileName, err)
	}
	defer f.Close()

	return s.ImportFrom(f)
}

// Restore - full chain rewrite from a text form file
//
// unlike Import this replaces the chain and insists on a valid
// result: the incoming chain is parsed and verified completely
// before being installed, so on any failure the current chain is
// unchanged
func (s *Store) Restore(fileName string) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	if !s.writable {
		return fault.ErrNotWritable
	}

	f, err := os.Open(fileName)
	if nil != err {
		return s.fail(fault.ErrCannotOpenFile, "restore: open %q: %s", fileName, err)
	}
	defer f.Close()

	incoming := []chainrecord.Record{}
	decoder := chainrecord.NewTextDecoder(f)
	for {
		record, err := decoder.Next()
		if io.EOF == err {
			break
		}
		if nil != err {
			return s.fail(err, "restore: cannot parse %q: %s", fileName, err)
		}
		incoming = append(incoming, *record)
	}

	if badIndex, err := verifyChain(incoming, s.hasher); nil != err {
		return s.fail(err, "restore: chain invalid at block %d: %s", badIndex, err)
	}

	s.chain = incoming
	s.fields.Flush()
	s.state = Modified
	s.log.Infof("restore: %d blocks from %q", len(incoming), fileName)
	return nil
}
