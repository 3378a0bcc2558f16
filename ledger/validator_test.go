// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
)

// a validator refusing payloads above a size limit
type sizeLimitValidator struct {
	limit int
}

func (v sizeLimitValidator) IsValid(record *chainrecord.Record) bool {
	return len(record.Payload) <= v.limit
}

func TestValidatorHook(t *testing.T) {
	e := setup(t)
	defer e.teardown(t)

	// no validator: everything is acceptable
	record := &chainrecord.Record{Payload: []byte("name=alice")}
	if !e.store.IsValid(record) {
		t.Error("nil validator rejected a record")
	}

	e.store.SetValidator(sizeLimitValidator{limit: 5})
	if e.store.IsValid(record) {
		t.Error("validator accepted an oversize record")
	}
	if !e.store.IsValid(&chainrecord.Record{Payload: []byte("k=v")}) {
		t.Error("validator rejected an acceptable record")
	}

	// removal restores the default
	e.store.SetValidator(nil)
	if !e.store.IsValid(record) {
		t.Error("cleared validator rejected a record")
	}
}

func TestDump(t *testing.T) {
	e := setup(t)
	defer e.teardown(t)

	mustAppend(t, e.store, "name=alice")

	buffer := &bytes.Buffer{}
	err := e.store.Dump(buffer)
	if nil != err {
		t.Fatalf("dump error: %v", err)
	}

	text := buffer.String()
	if !strings.Contains(text, "protocol: testing") {
		t.Errorf("dump missing protocol line: %q", text)
	}
	if !strings.Contains(text, "Block 0:") {
		t.Errorf("dump missing block listing: %q", text)
	}
	if !strings.Contains(text, "name=alice") {
		t.Errorf("dump missing field line: %q", text)
	}
}
