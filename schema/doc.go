// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - field metadata loader
//
// parses a human authored schema description of the form:
//
//	# comment
//	table(name) {
//	    fields: [
//	        string name,
//	        i32 age,
//	    ]
//	}
//
// only the ordered field names are retained; type tokens are not
// enforced by this layer
package schema
