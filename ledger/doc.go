// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the chain manager
//
// a Store owns the in-memory ordered sequence of records and the
// two backing files: a schema file describing field metadata and a
// storage file holding the chain as a flat sequence of fixed size
// records.  the store maintains the link invariant: every record's
// stored digest matches its recomputed digest and every record's
// previous-digest matches the actual predecessor.
//
// the store performs no internal locking; an application sharing one
// store across goroutines must serialise access externally.  records
// returned by Block or found by FindByField are borrowed references
// and must not be retained past the next mutating call.
package ledger
