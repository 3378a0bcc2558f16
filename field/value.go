// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"strconv"
	"strings"
	"time"
)

// Kind - the closed set of value kinds
type Kind int

// all possible kinds
const (
	Null Kind = iota
	Bool
	Int
	Float
	Text
	Array
	Object
	Enum
	DateTime
	Duration
)

var kindNames = [...]string{
	Null:     "null",
	Bool:     "bool",
	Int:      "int",
	Float:    "float",
	Text:     "text",
	Array:    "array",
	Object:   "object",
	Enum:     "enum",
	DateTime: "datetime",
	Duration: "duration",
}

// printable kind name
func (k Kind) String() string {
	if k < Null || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value - one typed field value
//
// only the member selected by Kind is meaningful; Text doubles as
// the raw form for Array, Object and Enum
type Value struct {
	Kind     Kind
	Bool     bool
	Int      int64
	Float    float64
	Text     string
	Items    []Value
	Time     time.Time
	Duration time.Duration
}

// time encoding for DateTime values
const timeLayout = time.RFC3339

// Parse - decode the text encoding of a value
//
// parsing is total and deterministic: the first matching rule wins
// and unmatched text is kept verbatim as Text
func Parse(s string) Value {
	switch {
	case "null" == s:
		return Value{Kind: Null}

	case "true" == s:
		return Value{Kind: Bool, Bool: true}

	case "false" == s:
		return Value{Kind: Bool}
	}

	if i, err := strconv.ParseInt(s, 10, 64); nil == err {
		return Value{Kind: Int, Int: i}
	}

	if f, err := strconv.ParseFloat(s, 64); nil == err {
		return Value{Kind: Float, Float: f}
	}

	if t, err := time.Parse(timeLayout, s); nil == err {
		return Value{Kind: DateTime, Time: t}
	}

	// duration needs at least one digit and one unit letter
	// so a bare word like "ms" stays text
	if strings.IndexFunc(s, isDigit) >= 0 {
		if d, err := time.ParseDuration(s); nil == err {
			return Value{Kind: Duration, Duration: d}
		}
	}

	if len(s) >= 2 && '[' == s[0] && ']' == s[len(s)-1] {
		return Value{Kind: Array, Text: s, Items: parseItems(s[1 : len(s)-1])}
	}

	if len(s) >= 2 && '{' == s[0] && '}' == s[len(s)-1] {
		return Value{Kind: Object, Text: s}
	}

	return Value{Kind: Text, Text: s}
}

// NewEnum - an enumeration symbol
//
// enumerations are indistinguishable from plain text without a
// schema, so they are only created explicitly
func NewEnum(symbol string) Value {
	return Value{Kind: Enum, Text: symbol}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// split a bracket body on top level commas only
func parseItems(body string) []Value {
	if "" == strings.TrimSpace(body) {
		return nil
	}

	items := []Value{}
	depth := 0
	start := 0
	for i := 0; i < len(body); i += 1 {
		switch body[i] {
		case '[', '{':
			depth += 1
		case ']', '}':
			depth -= 1
		case ',':
			if 0 == depth {
				items = append(items, Parse(strings.TrimSpace(body[start:i])))
				start = i + 1
			}
		}
	}
	items = append(items, Parse(strings.TrimSpace(body[start:])))
	return items
}

// String - the canonical text encoding of a value
func (v Value) String() string {
	switch v.Kind {
	case Null:
		return "null"
	case Bool:
		if v.Bool {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Array:
		s := make([]string, len(v.Items))
		for i, item := range v.Items {
			s[i] = item.String()
		}
		return "[" + strings.Join(s, ",") + "]"
	case DateTime:
		return v.Time.Format(timeLayout)
	case Duration:
		return v.Duration.String()
	default: // Text, Object, Enum keep their raw form
		return v.Text
	}
}

// convert a value to its text encoding
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// decode the text encoding into a value
func (v *Value) UnmarshalText(s []byte) error {
	*v = Parse(string(s))
	return nil
}
