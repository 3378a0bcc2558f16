// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - explicit tracking of open stores
//
// a Registry is a caller owned object: the embedding application
// creates it, passes it where needed and controls its lifetime;
// there is no ambient process-wide table
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerfile/fault"
	"github.com/bitmark-inc/ledgerfile/ledger"
)

// Registry - open stores keyed by their storage file path
type Registry struct {
	sync.RWMutex
	log    *logger.L
	stores map[string]*ledger.Store
}

// New - create an empty registry
func New() *Registry {
	return &Registry{
		log:    logger.New("registry"),
		stores: make(map[string]*ledger.Store),
	}
}

// Register - track an open store
//
// a second store over the same storage file is refused; this
// subsystem has single-writer semantics
func (r *Registry) Register(store *ledger.Store) error {
	r.Lock()
	defer r.Unlock()

	key := store.StorageFile()
	if _, ok := r.stores[key]; ok {
		return fault.ErrStoreAlreadyRegistered
	}
	r.stores[key] = store
	r.log.Infof("register: %q", key)
	return nil
}

// Deregister - stop tracking a store
func (r *Registry) Deregister(storageFile string) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.stores[storageFile]; !ok {
		return fault.ErrStoreNotRegistered
	}
	delete(r.stores, storageFile)
	r.log.Infof("deregister: %q", storageFile)
	return nil
}

// Lookup - the store registered for a storage file
func (r *Registry) Lookup(storageFile string) (*ledger.Store, error) {
	r.RLock()
	defer r.RUnlock()

	store, ok := r.stores[storageFile]
	if !ok {
		return nil, fault.ErrStoreNotRegistered
	}
	return store, nil
}

// Count - number of registered stores
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.stores)
}

// Shutdown - shut down every registered store and empty the registry
func (r *Registry) Shutdown() {
	r.Lock()
	defer r.Unlock()

	for key, store := range r.stores {
		if err := store.Shutdown(); nil != err {
			r.log.Errorf("shutdown %q: %s", key, err)
		}
		delete(r.stores, key)
	}
	r.log.Info("finished")
}
