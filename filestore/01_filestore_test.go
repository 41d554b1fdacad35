// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/filestore/01_filestore_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 18:02:55 krylon>

package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

var store *Store

func init() {
	var baseDir = filepath.Join(
		os.TempDir(),
		fmt.Sprintf("moltbot-todo-filestore-test-%d",
			time.Now().Unix()))

	if err := common.SetBaseDir(baseDir); err != nil {
		panic(err)
	}
} // func init()

func TestOpenFresh(t *testing.T) {
	var err error

	if store, err = Open(common.DataPath); err != nil {
		store = nil
		t.Fatalf("Cannot open filestore at %s: %s",
			common.DataPath,
			err.Error())
	}

	var todos []objects.Todo

	if todos, err = store.LoadAll(); err != nil {
		t.Fatalf("Cannot load from freshly created store: %s",
			err.Error())
	} else if len(todos) != 0 {
		t.Fatalf("Fresh store should be empty, found %d items",
			len(todos))
	}
} // func TestOpenFresh(t *testing.T)

func TestSaveLoadRoundtrip(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	const itemCnt = 16

	var (
		err   error
		items = make([]objects.Todo, itemCnt)
	)

	for i := range items {
		items[i] = objects.Todo{
			ID:      common.GetUUID(),
			Date:    "2026-09-15",
			Time:    fmt.Sprintf("%02d:30", i),
			Thing:   fmt.Sprintf("TEST #%03d", i),
			Changed: time.Now().In(common.Location),
		}
	}

	if err = store.SaveAll(items); err != nil {
		t.Fatalf("Cannot save Todo collection: %s",
			err.Error())
	}

	var loaded []objects.Todo

	if loaded, err = store.LoadAll(); err != nil {
		t.Fatalf("Cannot load Todo collection: %s",
			err.Error())
	} else if len(loaded) != itemCnt {
		t.Fatalf("Unexpected number of Todos: %d (expected %d)",
			len(loaded),
			itemCnt)
	}

	for i, td := range loaded {
		if td.ID != items[i].ID {
			t.Errorf("Unexpected ID at position %d: %q (expected %q)",
				i,
				td.ID,
				items[i].ID)
		} else if td.Thing != items[i].Thing {
			t.Errorf("Unexpected Thing at position %d: %q (expected %q)",
				i,
				td.Thing,
				items[i].Thing)
		}
	}
} // func TestSaveLoadRoundtrip(t *testing.T)

func TestSaveReplaces(t *testing.T) {
	if store == nil {
		t.SkipNow()
	}

	var (
		err    error
		single = []objects.Todo{
			objects.Todo{
				ID:    common.GetUUID(),
				Date:  "2026-10-01",
				Time:  "08:00",
				Thing: "Lone survivor",
			},
		}
		loaded []objects.Todo
	)

	if err = store.SaveAll(single); err != nil {
		t.Fatalf("Cannot save Todo collection: %s",
			err.Error())
	} else if loaded, err = store.LoadAll(); err != nil {
		t.Fatalf("Cannot load Todo collection: %s",
			err.Error())
	} else if len(loaded) != 1 {
		t.Fatalf("SaveAll should replace the collection, found %d items",
			len(loaded))
	} else if loaded[0].ID != single[0].ID {
		t.Errorf("Unexpected ID: %q (expected %q)",
			loaded[0].ID,
			single[0].ID)
	}
} // func TestSaveReplaces(t *testing.T)
