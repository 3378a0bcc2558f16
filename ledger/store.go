// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
	"github.com/bitmark-inc/ledgerfile/schema"
)

// State - lifecycle state of a store instance
type State int

// all possible states
//
// Synced and Flushed both satisfy the chain invariant; Modified
// means the in-memory chain has appends not yet written to storage
const (
	Uninitialised State = iota
	Initialised
	Synced
	Modified
	Flushed
)

var stateNames = [...]string{
	Uninitialised: "Uninitialised",
	Initialised:   "Initialised",
	Synced:        "Synced",
	Modified:      "Modified",
	Flushed:       "Flushed",
}

// printable state name
func (state State) String() string {
	if state < Uninitialised || int(state) >= len(stateNames) {
		return "Invalid"
	}
	return stateNames[state]
}

// Validator - optional custom record validation
//
// consulted by callers before or after an append; the store itself
// never invokes it implicitly
type Validator interface {
	IsValid(record *chainrecord.Record) bool
}

// parsed field memoization
const (
	fieldCacheExpiry = 5 * time.Minute
	fieldCachePurge  = 10 * time.Minute
)

// Store - one ledger instance
//
// exclusively owns its in-memory chain; concurrent instances over
// the same storage file are not coordinated
type Store struct {
	log *logger.L

	protocol    string
	schemaFile  string
	storageFile string

	schema    *schema.Schema
	chain     []chainrecord.Record
	hasher    chaindigest.Hasher
	validator Validator

	writable  bool
	state     State
	lastError string

	fields *cache.Cache
}

// NewStore - create a store instance
//
// the instance is writable with the default hasher; call Init (or
// LoadSchema and Sync separately) before use
func NewStore(protocol string, schemaFile string, storageFile string) (*Store, error) {
	if "" == protocol {
		return nil, fault.ErrProtocolIsRequired
	}
	if "" == schemaFile {
		return nil, fault.ErrSchemaFileIsRequired
	}
	if "" == storageFile {
		return nil, fault.ErrStorageFileIsRequired
	}

	s := &Store{
		log:         logger.New("ledger-" + protocol),
		protocol:    protocol,
		schemaFile:  schemaFile,
		storageFile: storageFile,
		hasher:      chaindigest.SHA3{},
		writable:    true,
		state:       Initialised,
		fields:      cache.New(fieldCacheExpiry, fieldCachePurge),
	}
	s.log.Infof("new store: protocol: %s  schema: %q  storage: %q", protocol, schemaFile, storageFile)

	return s, nil
}

// Init - the usual start sequence: load the schema then synchronise
// the chain from storage
func (s *Store) Init() error {
	err := s.LoadSchema()
	if nil != err {
		return err
	}
	return s.Sync()
}

// Shutdown - release the chain and field metadata
func (s *Store) Shutdown() error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	s.chain = nil
	s.schema = nil
	s.fields.Flush()
	s.state = Uninitialised
	s.log.Info("finished")
	return nil
}

// LoadSchema - read field metadata from the schema file
//
// may be called again at any time to pick up schema changes
func (s *Store) LoadSchema() error {
	if Uninitialised == s.state {
		return fault.ErrNotInitialised
	}
	loaded, err := schema.Load(s.schemaFile)
	if nil != err {
		return s.fail(err, "load schema: %q: %s", s.schemaFile, err)
	}
	s.schema = loaded
	s.log.Infof("schema: %d fields", loaded.FieldCount())
	return nil
}

// Protocol - the protocol identifier
func (s *Store) Protocol() string {
	return s.protocol
}

// StorageFile - path of the storage file
func (s *Store) StorageFile() string {
	return s.storageFile
}

// SchemaFile - path of the schema file
func (s *Store) SchemaFile() string {
	return s.schemaFile
}

// State - current lifecycle state
func (s *Store) State() State {
	return s.state
}

// LastError - human readable detail of the most recent failure
func (s *Store) LastError() string {
	return s.lastError
}

// SetWritable - allow or refuse mutating calls
func (s *Store) SetWritable(writable bool) {
	s.writable = writable
}

// SetHasher - inject a digest algorithm
//
// must be set before any records exist; changing the algorithm on a
// non-empty chain makes every stored digest mismatch
func (s *Store) SetHasher(hasher chaindigest.Hasher) {
	if nil == hasher {
		return
	}
	s.hasher = hasher
}

// SetValidator - inject the optional validation hook
func (s *Store) SetValidator(validator Validator) {
	s.validator = validator
}

// IsValid - consult the validation hook; true when none is set
func (s *Store) IsValid(record *chainrecord.Record) bool {
	if nil == s.validator {
		return true
	}
	return s.validator.IsValid(record)
}

// record and log a failure, passing the error through
func (s *Store) fail(err error, format string, arguments ...interface{}) error {
	s.lastError = fmt.Sprintf(format, arguments...)
	s.log.Errorf("%s", s.lastError)
	return err
}
