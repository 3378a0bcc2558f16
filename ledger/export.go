// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bufio"
	"io"
	"os"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// ExportTo - stream the human readable text form of the chain
//
// emits one block at a time so arbitrarily large chains need no
// memory beyond a single block
func (s *Store) ExportTo(w io.Writer) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}

	for i := 0; i < len(s.chain); i += 1 {
		err := s.chain[i].Render(w)
		if nil != err {
			return s.fail(fault.ErrCannotWriteFile, "export: block %d: %s", s.chain[i].Number, err)
		}
		_, err = io.WriteString(w, "\n")
		if nil != err {
			return s.fail(fault.ErrCannotWriteFile, "export: block %d: %s", s.chain[i].Number, err)
		}
	}
	return nil
}

// Export - write the text form of the chain to a file
func (s *Store) Export(fileName string) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return s.fail(fault.ErrCannotOpenFile, "export: open %q: %s", fileName, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	err = s.ExportTo(w)
	if nil != err {
		return err
	}
	err = w.Flush()
	if nil != err {
		return s.fail(fault.ErrCannotWriteFile, "export: flush %q: %s", fileName, err)
	}

	s.log.Infof("export: %d blocks to %q", len(s.chain), fileName)
	return nil
}
