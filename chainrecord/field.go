// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"strings"

	"github.com/bitmark-inc/ledgerfile/field"
)

// payload encoding: newline separated key=value lines
const (
	fieldSeparator = "\n"
	pairSeparator  = "="
)

// Field - one parsed key/value pair from a payload
//
// Raw is the value text exactly as stored; Value is its typed
// interpretation, whose canonical form may differ from Raw
type Field struct {
	Name  string
	Raw   string
	Value field.Value
}

// ParseFields - materialize the key/value pairs held in a payload
//
// fields are always derived from the payload on demand, never cached
// on the record itself; lines without a separator are skipped
func ParseFields(payload []byte) []Field {
	if 0 == len(payload) {
		return nil
	}

	lines := strings.Split(string(payload), fieldSeparator)
	fields := make([]Field, 0, len(lines))
	for _, line := range lines {
		i := strings.Index(line, pairSeparator)
		if i < 0 {
			continue
		}
		fields = append(fields, Field{
			Name:  line[:i],
			Raw:   line[i+1:],
			Value: field.Parse(line[i+1:]),
		})
	}
	return fields
}

// PackPayload - the inverse of ParseFields
//
// the stored text is preserved when present so that pack/parse is
// byte exact; fields built without it fall back to the canonical form
func PackPayload(fields []Field) []byte {
	lines := make([]string, len(fields))
	for i, f := range fields {
		value := f.Raw
		if "" == value {
			value = f.Value.String()
		}
		lines[i] = f.Name + pairSeparator + value
	}
	return []byte(strings.Join(lines, fieldSeparator))
}

// Fields - the parsed key/value pairs of this record
func (record *Record) Fields() []Field {
	return ParseFields(record.Payload)
}
