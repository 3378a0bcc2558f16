// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// Dump - diagnostic listing of the instance and its chain
//
// an explicitly invoked debug affordance; nothing in the core
// contract prints
func (s *Store) Dump(w io.Writer) error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}

	_, err := fmt.Fprintf(w, "protocol: %s\nstate: %s\nschema fields: %d\nblocks: %d\n\n",
		s.protocol, s.state, s.FieldCount(), len(s.chain))
	if nil != err {
		return err
	}

	return s.ExportTo(w)
}
