// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/fault"
)

// byte sizes for the record fields
const (
	NumberSize        = 8                  // zero based block number
	TimestampSize     = 8                  // seconds since 1970-01-01T00:00 UTC
	PreviousBlockSize = chaindigest.Length // digest of the preceding record
	DigestSize        = chaindigest.Length // digest of this record
	PayloadCountSize  = 2                  // actual payload byte count
	PayloadMaxSize    = 256                // payload capacity, zero padded
)

// offsets of the fields
const (
	numberOffset        = 0
	timestampOffset     = numberOffset + NumberSize
	previousBlockOffset = timestampOffset + TimestampSize
	digestOffset        = previousBlockOffset + PreviousBlockSize
	payloadCountOffset  = digestOffset + DigestSize
	payloadOffset       = payloadCountOffset + PayloadCountSize

	// to set size of the record array
	TotalRecordSize = payloadOffset + PayloadMaxSize // total bytes per record
)

// use fixed size array to simplify validation
type PackedRecord [TotalRecordSize]byte

// the unpacked record structure
type Record struct {
	Number        uint64             `json:"number,string"`
	Timestamp     uint64             `json:"timestamp,string"`
	PreviousBlock chaindigest.Digest `json:"previousBlock"`
	Digest        chaindigest.Digest `json:"digest"`
	Payload       []byte             `json:"payload"`
}

// turn a record into an array of bytes
func (record *Record) Pack() (PackedRecord, error) {
	buffer := PackedRecord{}

	if len(record.Payload) > PayloadMaxSize {
		return buffer, fault.ErrPayloadTooLong
	}

	binary.LittleEndian.PutUint64(buffer[numberOffset:], record.Number)
	binary.LittleEndian.PutUint64(buffer[timestampOffset:], record.Timestamp)

	// digests are plain byte arrays so can just copy them
	copy(buffer[previousBlockOffset:], record.PreviousBlock[:])
	copy(buffer[digestOffset:], record.Digest[:])

	binary.LittleEndian.PutUint16(buffer[payloadCountOffset:], uint16(len(record.Payload)))
	copy(buffer[payloadOffset:], record.Payload)

	return buffer, nil
}

// turn a byte array back into a record
func (record PackedRecord) Unpack() (*Record, error) {

	r := &Record{}

	r.Number = binary.LittleEndian.Uint64(record[numberOffset:])
	r.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	err := chaindigest.DigestFromBytes(&r.PreviousBlock, record[previousBlockOffset:digestOffset])
	if nil != err {
		return nil, err
	}
	err = chaindigest.DigestFromBytes(&r.Digest, record[digestOffset:payloadCountOffset])
	if nil != err {
		return nil, err
	}

	count := binary.LittleEndian.Uint16(record[payloadCountOffset:])
	if count > PayloadMaxSize {
		return nil, fault.ErrCannotDecodeRecord
	}

	r.Payload = make([]byte, count)
	copy(r.Payload, record[payloadOffset:payloadOffset+int(count)])

	return r, nil
}

// DigestData - the bytes covered by the record digest
//
// the packed record with its own digest field zeroed, i.e. every
// field except the digest itself
func (record *Record) DigestData() ([]byte, error) {
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}
	for i := digestOffset; i < payloadCountOffset; i += 1 {
		packed[i] = 0
	}
	return packed[:], nil
}

// ComputeDigest - recompute the digest of the record content
func (record *Record) ComputeDigest(hasher chaindigest.Hasher) (chaindigest.Digest, error) {
	data, err := record.DigestData()
	if nil != err {
		return chaindigest.Digest{}, err
	}
	return hasher.Hash(data)
}
