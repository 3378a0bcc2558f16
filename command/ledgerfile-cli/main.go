// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "ledgerfile-cli"
	app.Usage = "local tamper-evident record store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "append",
			Usage:     "append one record built from key=value arguments",
			ArgsUsage: "key=value ...",
			Action:    runAppend,
		},
		{
			Name:   "verify",
			Usage:  "check the chain integrity",
			Action: runVerify,
		},
		{
			Name:   "repair",
			Usage:  "recompute digests and links to restore consistency",
			Action: runRepair,
		},
		{
			Name:      "find",
			Usage:     "find the first block containing a field/value pair",
			ArgsUsage: "name value",
			Action:    runFind,
		},
		{
			Name:      "export",
			Usage:     "write the chain in the text form",
			ArgsUsage: "file",
			Action:    runExport,
		},
		{
			Name:      "import",
			Usage:     "append blocks parsed from a text form file",
			ArgsUsage: "file",
			Action:    runImport,
		},
		{
			Name:      "restore",
			Usage:     "replace the chain from a text form backup",
			ArgsUsage: "file",
			Action:    runRestore,
		},
		{
			Name:   "dump",
			Usage:  "diagnostic listing of the store and its chain",
			Action: runDump,
		},
		{
			Name:   "schema",
			Usage:  "show the loaded field names",
			Action: runSchema,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
