// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field - typed field values
//
// a value carries one of a closed set of kinds together with an
// explicit text encoding; parsing is total: text that matches no
// other kind is kept verbatim as Text
package field
