// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/chainrecord"
	"github.com/bitmark-inc/ledgerfile/fault"
)

func TestRender(t *testing.T) {
	r := &chainrecord.Record{
		Number:        2,
		Timestamp:     1572345678,
		PreviousBlock: chaindigest.NewDigest([]byte("previous")),
		Digest:        chaindigest.NewDigest([]byte("current")),
		Payload:       []byte("name=alice\nage=30"),
	}

	buffer := &bytes.Buffer{}
	err := r.Render(buffer)
	if nil != err {
		t.Fatalf("render error: %v", err)
	}

	expected := "Block 2:\n" +
		"  Index: 2\n" +
		"  Timestamp: 1572345678\n" +
		"  Previous Hash: " + r.PreviousBlock.String() + "\n" +
		"  Current Hash: " + r.Digest.String() + "\n" +
		"  Data Length: 17 bytes\n" +
		"  name=alice\n" +
		"  age=30\n"

	if expected != buffer.String() {
		t.Errorf("render = %q expected %q", buffer.String(), expected)
	}
}

// field lines must carry the value text as stored, not its canonical
// form, so that the rebuilt payload matches the digested bytes
func TestRenderPreservesStoredText(t *testing.T) {
	r := &chainrecord.Record{
		Number:  0,
		Payload: []byte("age=007"),
	}

	buffer := &bytes.Buffer{}
	if err := r.Render(buffer); nil != err {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(buffer.String(), "  age=007\n") {
		t.Errorf("render = %q expected to contain %q", buffer.String(), "  age=007\n")
	}

	decoder := chainrecord.NewTextDecoder(buffer)
	decoded, err := decoder.Next()
	if nil != err {
		t.Fatalf("decode error: %v", err)
	}
	if !bytes.Equal(r.Payload, decoded.Payload) {
		t.Errorf("payload = %q expected %q", decoded.Payload, r.Payload)
	}
}

func TestTextRoundTrip(t *testing.T) {
	records := []*chainrecord.Record{
		{
			Number:    0,
			Timestamp: 1572345600,
			Digest:    chaindigest.NewDigest([]byte("genesis")),
			Payload:   []byte("event=created"),
		},
		{
			Number:        1,
			Timestamp:     1572345660,
			PreviousBlock: chaindigest.NewDigest([]byte("genesis")),
			Digest:        chaindigest.NewDigest([]byte("one")),
			Payload:       []byte("name=alice\nage=30"),
		},
	}

	buffer := &bytes.Buffer{}
	for _, r := range records {
		if err := r.Render(buffer); nil != err {
			t.Fatalf("render error: %v", err)
		}
		buffer.WriteString("\n")
	}

	decoder := chainrecord.NewTextDecoder(buffer)
	for i, expected := range records {
		r, err := decoder.Next()
		if nil != err {
			t.Fatalf("%d: decode error: %v", i, err)
		}
		if expected.Number != r.Number {
			t.Errorf("%d: number = %d expected %d", i, r.Number, expected.Number)
		}
		if expected.Timestamp != r.Timestamp {
			t.Errorf("%d: timestamp = %d expected %d", i, r.Timestamp, expected.Timestamp)
		}
		if expected.PreviousBlock != r.PreviousBlock {
			t.Errorf("%d: previous = %#v expected %#v", i, r.PreviousBlock, expected.PreviousBlock)
		}
		if expected.Digest != r.Digest {
			t.Errorf("%d: digest = %#v expected %#v", i, r.Digest, expected.Digest)
		}
		if !bytes.Equal(expected.Payload, r.Payload) {
			t.Errorf("%d: payload = %q expected %q", i, r.Payload, expected.Payload)
		}
	}

	_, err := decoder.Next()
	if io.EOF != err {
		t.Errorf("error = %v expected EOF", err)
	}
}

func TestDecodeBodyBeforeHeader(t *testing.T) {
	decoder := chainrecord.NewTextDecoder(strings.NewReader("  Index: 0\n"))
	_, err := decoder.Next()
	if fault.ErrTextFormatInvalid != err {
		t.Errorf("error = %v expected %v", err, fault.ErrTextFormatInvalid)
	}
}

func TestDecodeBadDigest(t *testing.T) {
	text := "Block 0:\n  Current Hash: zz\n"
	decoder := chainrecord.NewTextDecoder(strings.NewReader(text))
	_, err := decoder.Next()
	if fault.ErrTextFormatInvalid != err {
		t.Errorf("error = %v expected %v", err, fault.ErrTextFormatInvalid)
	}
}

func TestDecodeEmpty(t *testing.T) {
	decoder := chainrecord.NewTextDecoder(strings.NewReader(""))
	_, err := decoder.Next()
	if io.EOF != err {
		t.Errorf("error = %v expected EOF", err)
	}
}
