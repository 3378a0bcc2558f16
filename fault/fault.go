// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type FileError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBlockNotFound          = NotFoundError("block not found")
	ErrCannotDecodeRecord     = ProcessError("cannot decode record")
	ErrCannotOpenFile         = FileError("cannot open file")
	ErrCannotReadFile         = FileError("cannot read file")
	ErrCannotWriteFile        = FileError("cannot write file")
	ErrConfigFileIsRequired   = InvalidError("configuration file is required")
	ErrConfigIsNotATable      = InvalidError("configuration must return a table")
	ErrCorruptStorageSize     = LengthError("storage file size is not a multiple of the record size")
	ErrDigestMismatch         = IntegrityError("digest does not match record content")
	ErrEmptyDigestInput       = InvalidError("digest input is empty")
	ErrFieldNameIsRequired    = InvalidError("field name is required")
	ErrFieldNotFound          = NotFoundError("field name is not in the schema")
	ErrInvalidDigestLength    = LengthError("digest length is invalid")
	ErrKeyValueNotFound       = NotFoundError("no block contains the key and value")
	ErrLinkBroken             = IntegrityError("previous digest link is broken")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotWritable            = AccessError("store is not writable")
	ErrPayloadIsEmpty         = InvalidError("payload is empty")
	ErrPayloadTooLong         = LengthError("payload exceeds record capacity")
	ErrProtocolIsRequired     = InvalidError("protocol is required")
	ErrRecordRejected         = ProcessError("record rejected by validator")
	ErrSchemaFileIsRequired   = InvalidError("schema file is required")
	ErrStoreAlreadyRegistered = ExistsError("store is already registered")
	ErrStoreNotRegistered     = NotFoundError("store is not registered")
	ErrStorageFileIsRequired  = InvalidError("storage file is required")
	ErrTextFormatInvalid      = ProcessError("text form is not valid")
	ErrWriteWasShort          = FileError("write was short")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string    { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e FileError) Error() string      { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool    { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrFile(e error) bool      { _, ok := e.(FileError); return ok }
func IsErrIntegrity(e error) bool { _, ok := e.(IntegrityError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
