// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command line interface to a ledgerfile store
//
// e.g.
//
//	ledgerfile-cli --config=ledger.conf append name=alice age=30
//	ledgerfile-cli --config=ledger.conf verify
//	ledgerfile-cli --config=ledger.conf find name alice
package main
