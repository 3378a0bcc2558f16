// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainrecord - the on-disk ledger record
//
// defines the fixed size binary layout used by the storage file and
// the human readable multi-line text form used by export and import
package chainrecord
