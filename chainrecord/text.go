// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// scalar line prefixes of the text form
const (
	indexPrefix      = "Index:"
	timestampPrefix  = "Timestamp:"
	previousPrefix   = "Previous Hash:"
	currentPrefix    = "Current Hash:"
	dataLengthPrefix = "Data Length:"
)

// Render - write the human readable text form of one record
//
// the form is a display/interchange format: index, timestamp, both
// digests and the key/value pairs are preserved; raw payload bytes
// are not
func (record *Record) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Block %d:\n", record.Number)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s %d\n", indexPrefix, record.Number)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s %d\n", timestampPrefix, record.Timestamp)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s %s\n", previousPrefix, record.PreviousBlock)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s %s\n", currentPrefix, record.Digest)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s %d bytes\n", dataLengthPrefix, len(record.Payload))
	if nil != err {
		return err
	}
	// field lines carry the value text exactly as stored; the digest
	// covers the payload bytes, so rewriting them in canonical form
	// would break an export/restore round trip
	for _, f := range record.Fields() {
		_, err = fmt.Fprintf(w, "  %s%s%s\n", f.Name, pairSeparator, f.Raw)
		if nil != err {
			return err
		}
	}
	return nil
}

// TextDecoder - streaming parser for the text form
//
// a "Block <n>:" header starts a new record and closes the previous
// one; scalar lines populate the record and any other line containing
// "=" becomes a field key/value pair
type TextDecoder struct {
	scanner *bufio.Scanner
	current *Record
	lines   []string
	done    bool
}

// NewTextDecoder - decode records from a reader
func NewTextDecoder(r io.Reader) *TextDecoder {
	return &TextDecoder{
		scanner: bufio.NewScanner(r),
	}
}

// Next - the next complete record
//
// returns io.EOF after the final record
func (d *TextDecoder) Next() (*Record, error) {
	if d.done {
		return nil, io.EOF
	}

	for d.scanner.Scan() {
		line := strings.TrimSpace(d.scanner.Text())
		if "" == line {
			continue
		}

		var n uint64
		if _, err := fmt.Sscanf(line, "Block %d:", &n); nil == err {
			finished := d.finish()
			d.current = &Record{Number: n}
			d.lines = nil
			if nil != finished {
				return finished, nil
			}
			continue
		}

		if nil == d.current {
			return nil, fault.ErrTextFormatInvalid
		}

		err := d.applyLine(line)
		if nil != err {
			return nil, err
		}
	}
	if err := d.scanner.Err(); nil != err {
		return nil, err
	}

	d.done = true
	finished := d.finish()
	if nil == finished {
		return nil, io.EOF
	}
	return finished, nil
}

// apply one body line to the record being assembled
func (d *TextDecoder) applyLine(line string) error {
	switch {

	case strings.HasPrefix(line, indexPrefix):
		_, err := fmt.Sscanf(line, indexPrefix+" %d", &d.current.Number)
		if nil != err {
			return fault.ErrTextFormatInvalid
		}

	case strings.HasPrefix(line, timestampPrefix):
		_, err := fmt.Sscanf(line, timestampPrefix+" %d", &d.current.Timestamp)
		if nil != err {
			return fault.ErrTextFormatInvalid
		}

	case strings.HasPrefix(line, previousPrefix):
		text := strings.TrimSpace(line[len(previousPrefix):])
		err := d.current.PreviousBlock.UnmarshalText([]byte(text))
		if nil != err {
			return fault.ErrTextFormatInvalid
		}

	case strings.HasPrefix(line, currentPrefix):
		text := strings.TrimSpace(line[len(currentPrefix):])
		err := d.current.Digest.UnmarshalText([]byte(text))
		if nil != err {
			return fault.ErrTextFormatInvalid
		}

	case strings.HasPrefix(line, dataLengthPrefix):
		// informational; the payload is rebuilt from the field lines

	case strings.Contains(line, pairSeparator):
		d.lines = append(d.lines, line)

	default:
		return fault.ErrTextFormatInvalid
	}
	return nil
}

// close the record being assembled, rebuilding its payload
func (d *TextDecoder) finish() *Record {
	record := d.current
	if nil == record {
		return nil
	}
	record.Payload = []byte(strings.Join(d.lines, fieldSeparator))
	d.current = nil
	d.lines = nil
	return record
}
