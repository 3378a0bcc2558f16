// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strconv"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// BlockCount - number of blocks currently held in memory
func (s *Store) BlockCount() int {
	return len(s.chain)
}

// Block - borrow the record at a position
//
// the reference is only valid until the next mutating call
func (s *Store) Block(number uint64) (*chainrecord.Record, error) {
	if Uninitialised == s.state {
		return nil, fault.ErrNotInitialised
	}
	if number >= uint64(len(s.chain)) {
		return nil, fault.ErrBlockNotFound
	}
	return &s.chain[number], nil
}

// FieldCount - number of field names in the loaded schema
func (s *Store) FieldCount() int {
	if nil == s.schema {
		return 0
	}
	return s.schema.FieldCount()
}

// FieldNames - ordered copy of the loaded field names
func (s *Store) FieldNames() []string {
	if nil == s.schema {
		return nil
	}
	return s.schema.Names()
}

// FieldIndex - exact, case sensitive schema lookup
func (s *Store) FieldIndex(name string) (int, error) {
	if nil == s.schema {
		return 0, fault.ErrNotInitialised
	}
	return s.schema.FieldIndex(name)
}

// FindByField - first block at or after start containing name=value
//
// the value matches on the text exactly as stored, or on the
// canonical form of its typed interpretation; a deliberate linear
// scan over blocks and their parsed fields, no index structure is
// maintained
func (s *Store) FindByField(name string, value string, start uint64) (uint64, error) {
	if Uninitialised == s.state {
		return 0, fault.ErrNotInitialised
	}
	if "" == name {
		return 0, fault.ErrFieldNameIsRequired
	}

	for i := start; i < uint64(len(s.chain)); i += 1 {
		for _, f := range s.blockFields(i) {
			if f.Name != name {
				continue
			}
			if f.Raw == value || f.Value.String() == value {
				return i, nil
			}
		}
	}
	return 0, fault.ErrKeyValueNotFound
}

// parsed fields of one block, memoized
//
// safe to memoize because blocks are immutable between full chain
// rewrites, and those purge the cache
func (s *Store) blockFields(number uint64) []chainrecord.Field {
	key := strconv.FormatUint(number, 10)
	if cached, ok := s.fields.Get(key); ok {
		return cached.([]chainrecord.Field)
	}
	fields := s.chain[number].Fields()
	s.fields.Set(key, fields, cache.DefaultExpiration)
	return fields
}
