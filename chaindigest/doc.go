// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaindigest - link digest for chain records
//
// the chain only ever compares digests for equality, so the
// algorithm is pluggable; the default is SHA3-256 and a memory
// intensive Argon2d variant is retained for interoperability testing
package chaindigest
