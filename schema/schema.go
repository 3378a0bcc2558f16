// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"bufio"
	"os"
	"strings"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// MaximumFields - capacity of the field table; declarations beyond
// this are ignored
const MaximumFields = 64

// comment marker
const commentMarker = "#"

// markers opening a declaration block
var blockMarkers = []string{"table(", "document(", "collection("}

// markers opening a fields section
var fieldsMarkers = []string{"fields:", "schema:"}

// Schema - ordered, unique-by-name list of field names
type Schema struct {
	names []string
}

// parser states
type parserState int

const (
	outside parserState = iota
	inBlock
	inFields
)

// Load - read a schema file and collect its field names
//
// an unreadable file is an error; a schema with no fields is not
func Load(fileName string) (*Schema, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, fault.ErrCannotOpenFile
	}
	defer f.Close()

	s := &Schema{
		names: make([]string, 0, MaximumFields),
	}

	state := outside

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, commentMarker) {
			continue
		}

		state = s.processLine(state, line)
	}
	if err := scanner.Err(); nil != err {
		return nil, fault.ErrCannotReadFile
	}

	return s, nil
}

// advance the parser by one line; declarations may share a line with
// the markers that introduce them
func (s *Schema) processLine(state parserState, line string) parserState {
	switch state {

	case outside:
		if "" == line || !opensBlock(line) {
			return outside
		}
		state = inBlock
		if i := strings.Index(line, "{"); i >= 0 {
			if rest := strings.TrimSpace(line[i+1:]); "" != rest {
				state = s.processLine(state, rest)
			}
		}
		return state

	case inBlock:
		if "" == line || strings.HasPrefix(line, "}") {
			return outside
		}
		if !opensFields(line) {
			return inBlock
		}
		state = inFields
		if i := strings.Index(line, "["); i >= 0 {
			if rest := strings.TrimSpace(line[i+1:]); "" != rest {
				state = s.processLine(state, rest)
			}
		}
		return state

	case inFields:
		if "" == line {
			return inBlock
		}
		if i := strings.Index(line, "]"); i >= 0 {
			s.addDeclarations(line[:i])
			if strings.Contains(line[i:], "}") {
				return outside
			}
			return inBlock
		}
		if strings.HasPrefix(line, "}") {
			return outside
		}
		s.addDeclarations(line)
		return inFields
	}

	return state
}

// true if the line starts a table/document/collection block
func opensBlock(line string) bool {
	for _, marker := range blockMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// true if the line introduces a fields section
func opensFields(line string) bool {
	for _, marker := range fieldsMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// parse comma separated "<type-token> <name-token>" declarations
// keeping only the names
func (s *Schema) addDeclarations(text string) {
	for _, declaration := range strings.Split(text, ",") {
		tokens := strings.Fields(declaration)
		if len(tokens) < 2 {
			continue
		}
		s.addName(tokens[1])
	}
}

// record a field name; duplicates and names beyond capacity are ignored
func (s *Schema) addName(name string) {
	if len(s.names) >= MaximumFields {
		return
	}
	for _, existing := range s.names {
		if existing == name {
			return
		}
	}
	s.names = append(s.names, name)
}

// FieldCount - number of loaded field names
func (s *Schema) FieldCount() int {
	return len(s.names)
}

// FieldIndex - exact, case sensitive name lookup
func (s *Schema) FieldIndex(name string) (int, error) {
	for i, existing := range s.names {
		if existing == name {
			return i, nil
		}
	}
	return 0, fault.ErrFieldNotFound
}

// Name - field name at an index
func (s *Schema) Name(index int) (string, error) {
	if index < 0 || index >= len(s.names) {
		return "", fault.ErrFieldNotFound
	}
	return s.names[index], nil
}

// Names - copy of the ordered field names
func (s *Schema) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
