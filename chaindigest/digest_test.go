// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindigest_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/ledgerfile/chaindigest"
	"github.com/bitmark-inc/ledgerfile/fault"
)

func TestDigest(t *testing.T) {
	s := []byte("hello world")
	d := chaindigest.NewDigest(s)

	// printf '%s' 'hello world' | sha3sum -a 256
	stringDigest := "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"

	if stringDigest != fmt.Sprintf("%s", d) {
		t.Errorf("digest = %s expected %s", d, stringDigest)
	}

	if "<digest:"+stringDigest+">" != fmt.Sprintf("%#v", d) {
		t.Errorf("digest#v = %#v expected %s", d, stringDigest)
	}
}

func TestScanFmt(t *testing.T) {
	stringDigest := "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"

	var d chaindigest.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	expected := chaindigest.NewDigest([]byte("hello world"))
	if d != expected {
		t.Errorf("digest = %#v expected %#v", d, expected)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	d := chaindigest.NewDigest([]byte("round trip"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %v", err)
	}

	var r chaindigest.Digest
	err = r.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %v", err)
	}

	if d != r {
		t.Errorf("digest = %#v expected %#v", r, d)
	}
}

func TestDeterminism(t *testing.T) {
	one := chaindigest.NewDigest([]byte("same input"))
	two := chaindigest.NewDigest([]byte("same input"))
	if one != two {
		t.Errorf("digest is not deterministic: %#v != %#v", one, two)
	}

	other := chaindigest.NewDigest([]byte("other input"))
	if one == other {
		t.Errorf("distinct inputs produced the same digest: %#v", one)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := chaindigest.SHA3{}.Hash(nil)
	if fault.ErrEmptyDigestInput != err {
		t.Errorf("error = %v expected %v", err, fault.ErrEmptyDigestInput)
	}
}

func TestZero(t *testing.T) {
	var d chaindigest.Digest
	if !d.IsZero() {
		t.Error("fresh digest is not zero")
	}

	d = chaindigest.NewDigest([]byte("x"))
	if d.IsZero() {
		t.Error("computed digest reported as zero")
	}
}

func TestDigestFromBytes(t *testing.T) {
	var d chaindigest.Digest
	err := chaindigest.DigestFromBytes(&d, []byte{1, 2, 3})
	if fault.ErrInvalidDigestLength != err {
		t.Errorf("error = %v expected %v", err, fault.ErrInvalidDigestLength)
	}

	source := chaindigest.NewDigest([]byte("bytes"))
	err = chaindigest.DigestFromBytes(&d, source[:])
	if nil != err {
		t.Fatalf("digest from bytes error: %v", err)
	}
	if d != source {
		t.Errorf("digest = %#v expected %#v", d, source)
	}
}
