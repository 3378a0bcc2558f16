// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/ledgerfile/fault"
)

// basic defaults (files are relative to the "data_directory" from
// the configuration file)
const (
	defaultProtocol    = "local"
	defaultSchemaFile  = "ledger.schema"
	defaultStorageFile = "ledger.data"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerfile.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when log file exceeds this size
)

// Configuration - settings for one store instance
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	Protocol      string               `gluamapper:"protocol"`
	SchemaFile    string               `gluamapper:"schema_file"`
	StorageFile   string               `gluamapper:"storage_file"`
	ReadOnly      bool                 `gluamapper:"read_only"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

// Parse - read a Lua configuration file and fill in defaults
func Parse(fileName string) (*Configuration, error) {
	if "" == fileName {
		return nil, fault.ErrConfigFileIsRequired
	}

	config := &Configuration{
		Protocol:    defaultProtocol,
		SchemaFile:  defaultSchemaFile,
		StorageFile: defaultStorageFile,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	err := readLuaFile(fileName, config)
	if nil != err {
		return nil, err
	}

	// resolve relative paths against the data directory, which is
	// itself relative to the configuration file
	if "" == config.DataDirectory {
		config.DataDirectory = filepath.Dir(fileName)
	} else if !filepath.IsAbs(config.DataDirectory) {
		config.DataDirectory = filepath.Join(filepath.Dir(fileName), config.DataDirectory)
	}

	config.SchemaFile = resolve(config.DataDirectory, config.SchemaFile)
	config.StorageFile = resolve(config.DataDirectory, config.StorageFile)
	config.Logging.Directory = resolve(config.DataDirectory, config.Logging.Directory)

	return config, nil
}

func resolve(directory string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(directory, path)
}

// execute a Lua file and map the table it returns onto the
// configuration structure
func readLuaFile(fileName string, config *Configuration) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigIsNotATable
	}

	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}}
	return mapper.Map(table, config)
}
