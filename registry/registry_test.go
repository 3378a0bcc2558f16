// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerfile/fault"
	"github.com/bitmark-inc/ledgerfile/ledger"
	"github.com/bitmark-inc/ledgerfile/registry"
)

const logDirectory = "testing"

func TestMain(m *testing.M) {
	_ = os.Mkdir(logDirectory, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

func newStore(t *testing.T, dir string, name string) *ledger.Store {
	t.Helper()

	schemaFile := filepath.Join(dir, name+".schema")
	err := ioutil.WriteFile(schemaFile, []byte("table(x) { fields: [ string name ] }\n"), 0600)
	if nil != err {
		t.Fatalf("write schema error: %v", err)
	}

	store, err := ledger.NewStore("testing", schemaFile, filepath.Join(dir, name+".ledger"))
	if nil != err {
		t.Fatalf("new store error: %v", err)
	}
	return store
}

func TestRegistry(t *testing.T) {
	dir, err := ioutil.TempDir("", "registry-test")
	if nil != err {
		t.Fatalf("tempdir error: %v", err)
	}
	defer os.RemoveAll(dir)

	r := registry.New()

	one := newStore(t, dir, "one")
	two := newStore(t, dir, "two")

	if err := r.Register(one); nil != err {
		t.Fatalf("register error: %v", err)
	}
	if err := r.Register(two); nil != err {
		t.Fatalf("register error: %v", err)
	}
	if 2 != r.Count() {
		t.Errorf("count = %d expected 2", r.Count())
	}

	// the same storage file cannot be registered twice
	duplicate := newStore(t, dir, "one")
	if err := r.Register(duplicate); fault.ErrStoreAlreadyRegistered != err {
		t.Errorf("error = %v expected %v", err, fault.ErrStoreAlreadyRegistered)
	}

	found, err := r.Lookup(one.StorageFile())
	if nil != err {
		t.Fatalf("lookup error: %v", err)
	}
	if found != one {
		t.Error("lookup returned the wrong store")
	}

	if err := r.Deregister(one.StorageFile()); nil != err {
		t.Fatalf("deregister error: %v", err)
	}
	if _, err := r.Lookup(one.StorageFile()); fault.ErrStoreNotRegistered != err {
		t.Errorf("error = %v expected %v", err, fault.ErrStoreNotRegistered)
	}
	if err := r.Deregister(one.StorageFile()); fault.ErrStoreNotRegistered != err {
		t.Errorf("error = %v expected %v", err, fault.ErrStoreNotRegistered)
	}

	r.Shutdown()
	if 0 != r.Count() {
		t.Errorf("count = %d expected 0", r.Count())
	}
}
