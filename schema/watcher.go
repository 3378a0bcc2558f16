// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher - signals when a schema file changes on disk
//
// the embedding application decides when to act on a change; the
// watcher never reloads a schema itself
type Watcher struct {
	fileName string
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	stop     chan struct{}
}

// NewWatcher - watch one schema file for writes
//
// the containing directory is watched so that editors which replace
// the file by rename are still detected
func NewWatcher(fileName string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	absolute, err := filepath.Abs(fileName)
	if nil != err {
		fsw.Close()
		return nil, err
	}

	err = fsw.Add(filepath.Dir(absolute))
	if nil != err {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fileName: absolute,
		watcher:  fsw,
		changes:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Changes - receives one token per detected modification
//
// the channel has capacity one; bursts of writes coalesce
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close - stop watching and release the underlying watcher
func (w *Watcher) Close() error {
	close(w.stop)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.fileName {
				continue
			}
			if 0 == event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default: // a change is already pending
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
