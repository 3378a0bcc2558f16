// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/ledgerfile/fault"
	"github.com/bitmark-inc/ledgerfile/schema"
)

// write schema text to a temporary file and load it
func loadText(t *testing.T, text string) *schema.Schema {
	t.Helper()

	dir, err := ioutil.TempDir("", "schema-test")
	if nil != err {
		t.Fatalf("tempdir error: %v", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.schema")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %v", err)
	}

	s, err := schema.Load(fileName)
	if nil != err {
		t.Fatalf("load error: %v", err)
	}
	return s
}

func TestSingleLine(t *testing.T) {
	s := loadText(t, "table(x) { fields: [ string name, i32 age ] }\n")

	if 2 != s.FieldCount() {
		t.Fatalf("field count = %d expected 2", s.FieldCount())
	}

	i, err := s.FieldIndex("name")
	if nil != err || 0 != i {
		t.Errorf("index(name) = %d, %v expected 0, nil", i, err)
	}

	i, err = s.FieldIndex("age")
	if nil != err || 1 != i {
		t.Errorf("index(age) = %d, %v expected 1, nil", i, err)
	}
}

func TestMultiLine(t *testing.T) {
	text := `# sample schema
table(accounts) {
    fields: [
        string owner,
        i64 balance,
        string currency,
    ]
}

document(audit) {
    fields: [
        string actor,
        datetime when,
    ]
}
`
	s := loadText(t, text)

	expected := []string{"owner", "balance", "currency", "actor", "when"}
	names := s.Names()
	if len(expected) != len(names) {
		t.Fatalf("names = %v expected %v", names, expected)
	}
	for i, name := range expected {
		if name != names[i] {
			t.Errorf("name[%d] = %q expected %q", i, names[i], name)
		}
	}
}

func TestCommentsAndBlanks(t *testing.T) {
	text := `# leading comment

collection(c) {
    # inside the block
    fields: [
        # inside the fields section
        bool flag,
    ]
}
`
	s := loadText(t, text)
	if 1 != s.FieldCount() {
		t.Fatalf("field count = %d expected 1", s.FieldCount())
	}
}

func TestBlankLineTerminatesFields(t *testing.T) {
	text := `table(t) {
    fields: [
        string kept,

        string dropped,
    ]
}
`
	s := loadText(t, text)
	if 1 != s.FieldCount() {
		t.Fatalf("field count = %d expected 1 got %v", s.FieldCount(), s.Names())
	}
}

func TestDuplicatesIgnored(t *testing.T) {
	text := `table(t) {
    fields: [
        string a,
        string a,
        string b,
    ]
}
`
	s := loadText(t, text)

	expected := []string{"a", "b"}
	names := s.Names()
	if len(expected) != len(names) {
		t.Fatalf("names = %v expected %v", names, expected)
	}
}

func TestCapacity(t *testing.T) {
	text := "table(big) {\n    fields: [\n"
	for i := 0; i < schema.MaximumFields+10; i += 1 {
		text += fmt.Sprintf("        string f%03d,\n", i)
	}
	text += "    ]\n}\n"

	s := loadText(t, text)
	if schema.MaximumFields != s.FieldCount() {
		t.Fatalf("field count = %d expected %d", s.FieldCount(), schema.MaximumFields)
	}
}

func TestEmptySchema(t *testing.T) {
	s := loadText(t, "# nothing declared\n")
	if 0 != s.FieldCount() {
		t.Fatalf("field count = %d expected 0", s.FieldCount())
	}

	_, err := s.FieldIndex("missing")
	if fault.ErrFieldNotFound != err {
		t.Errorf("error = %v expected %v", err, fault.ErrFieldNotFound)
	}
}

func TestCaseSensitive(t *testing.T) {
	s := loadText(t, "table(x) { fields: [ string Name ] }\n")

	_, err := s.FieldIndex("name")
	if fault.ErrFieldNotFound != err {
		t.Errorf("error = %v expected %v", err, fault.ErrFieldNotFound)
	}

	i, err := s.FieldIndex("Name")
	if nil != err || 0 != i {
		t.Errorf("index(Name) = %d, %v expected 0, nil", i, err)
	}
}

func TestUnreadableFile(t *testing.T) {
	_, err := schema.Load("/nonexistent/no/such.schema")
	if fault.ErrCannotOpenFile != err {
		t.Errorf("error = %v expected %v", err, fault.ErrCannotOpenFile)
	}
}
