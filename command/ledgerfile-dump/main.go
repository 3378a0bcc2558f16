// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// dump the raw records of a storage file
//
// reads the file directly without opening a store, so it also works
// on files that fail verification
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/ledgerfile/chainrecord"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--count=N] --file=FILE", program)
	}

	count := 0 // zero means all records
	if 1 == len(options["count"]) {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	fileName := options["file"][0]
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		exitwithstatus.Message("%s: cannot read: %q  error: %s", program, fileName, err)
	}

	if 0 != len(data)%chainrecord.TotalRecordSize {
		exitwithstatus.Message("%s: %q length %d is not a multiple of the record size %d",
			program, fileName, len(data), chainrecord.TotalRecordSize)
	}

	total := len(data) / chainrecord.TotalRecordSize
	if 0 == count || count > total {
		count = total
	}

	for i := 0; i < count; i += 1 {
		packed := chainrecord.PackedRecord{}
		copy(packed[:], data[i*chainrecord.TotalRecordSize:])

		record, err := packed.Unpack()
		if nil != err {
			exitwithstatus.Message("%s: cannot decode record %d: %s", program, i, err)
		}

		err = record.Render(os.Stdout)
		if nil != err {
			exitwithstatus.Message("%s: write error: %s", program, err)
		}
		fmt.Println()
	}
}
