// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerfile/configuration"
	"github.com/bitmark-inc/ledgerfile/fault"
	"github.com/bitmark-inc/ledgerfile/ledger"
	"github.com/bitmark-inc/ledgerfile/registry"
)

// an open store with its registry, ready for one command
type instance struct {
	config   *configuration.Configuration
	registry *registry.Registry
	store    *ledger.Store
}

// read the configuration, start logging and open the store
func openStore(c *cli.Context) (*instance, error) {
	fileName := c.GlobalString("config")
	if "" == fileName {
		return nil, fault.ErrConfigFileIsRequired
	}

	config, err := configuration.Parse(fileName)
	if nil != err {
		return nil, err
	}

	err = logger.Initialise(config.Logging)
	if nil != err {
		return nil, err
	}

	store, err := ledger.NewStore(config.Protocol, config.SchemaFile, config.StorageFile)
	if nil != err {
		return nil, err
	}
	store.SetWritable(!config.ReadOnly)

	err = store.Init()
	if nil != err {
		return nil, fmt.Errorf("%s: %s", err, store.LastError())
	}

	r := registry.New()
	err = r.Register(store)
	if nil != err {
		return nil, err
	}

	return &instance{
		config:   config,
		registry: r,
		store:    store,
	}, nil
}

func (i *instance) close() {
	i.registry.Shutdown()
	logger.Finalise()
}

func runAppend(c *cli.Context) error {
	if 0 == len(c.Args()) {
		return fault.ErrPayloadIsEmpty
	}
	for _, argument := range c.Args() {
		if !strings.Contains(argument, "=") {
			return fmt.Errorf("argument %q is not key=value", argument)
		}
	}

	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	payload := strings.Join(c.Args(), "\n")
	number, err := i.store.Append([]byte(payload))
	if nil != err {
		return err
	}

	// consult the optional validation hook before making the
	// append durable
	record, err := i.store.Block(number)
	if nil != err {
		return err
	}
	if !i.store.IsValid(record) {
		return fault.ErrRecordRejected
	}

	err = i.store.Flush()
	if nil != err {
		return err
	}

	fmt.Printf("block: %d\n", number)
	return nil
}

func runVerify(c *cli.Context) error {
	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	badIndex, err := i.store.Verify()
	if nil != err {
		return fmt.Errorf("chain invalid at block %d: %s", badIndex, err)
	}

	fmt.Printf("chain valid: %d blocks\n", i.store.BlockCount())
	return nil
}

func runRepair(c *cli.Context) error {
	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	err = i.store.Repair()
	if nil != err {
		return err
	}
	err = i.store.Flush()
	if nil != err {
		return err
	}

	fmt.Printf("repaired: %d blocks\n", i.store.BlockCount())
	return nil
}

func runFind(c *cli.Context) error {
	name := c.Args().Get(0)
	value := c.Args().Get(1)
	if "" == name {
		return fault.ErrFieldNameIsRequired
	}

	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	number, err := i.store.FindByField(name, value, 0)
	if nil != err {
		return err
	}

	record, err := i.store.Block(number)
	if nil != err {
		return err
	}
	return record.Render(os.Stdout)
}

func runExport(c *cli.Context) error {
	fileName := c.Args().Get(0)
	if "" == fileName {
		return fault.ErrCannotOpenFile
	}

	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	err = i.store.Export(fileName)
	if nil != err {
		return err
	}

	fmt.Printf("exported: %d blocks to %q\n", i.store.BlockCount(), fileName)
	return nil
}

func runImport(c *cli.Context) error {
	fileName := c.Args().Get(0)
	if "" == fileName {
		return fault.ErrCannotOpenFile
	}

	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	err = i.store.Import(fileName)
	if nil != err {
		return err
	}

	// import loads bytes without trusting them
	badIndex, err := i.store.Verify()
	if nil != err {
		return fmt.Errorf("imported chain invalid at block %d: %s", badIndex, err)
	}

	err = i.store.Flush()
	if nil != err {
		return err
	}

	fmt.Printf("imported: now %d blocks\n", i.store.BlockCount())
	return nil
}

func runRestore(c *cli.Context) error {
	fileName := c.Args().Get(0)
	if "" == fileName {
		return fault.ErrCannotOpenFile
	}

	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	err = i.store.Restore(fileName)
	if nil != err {
		return err
	}
	err = i.store.Flush()
	if nil != err {
		return err
	}

	fmt.Printf("restored: %d blocks\n", i.store.BlockCount())
	return nil
}

func runDump(c *cli.Context) error {
	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	return i.store.Dump(os.Stdout)
}

func runSchema(c *cli.Context) error {
	i, err := openStore(c)
	if nil != err {
		return err
	}
	defer i.close()

	for number, name := range i.store.FieldNames() {
		fmt.Printf("%3d  %s\n", number, name)
	}
	return nil
}
