// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/filestore/filestore.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 17:28:19 krylon>

// Package filestore persists the Todo collection to a flat JSON file.
// The whole collection is read and written in one piece, writes go to
// a temporary file that is renamed over the old one.
package filestore

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/blicero/krylib"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/logdomain"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

// Store is a flat-file backed Todo store.
type Store struct {
	log  *log.Logger
	path string
	lock sync.Mutex
}

// Open opens the flat-file store at the given path, creating an empty
// collection if the file does not exist, yet.
func Open(path string) (*Store, error) {
	var (
		err    error
		exists bool
		s      = &Store{path: path}
	)

	if s.log, err = common.GetLogger(logdomain.Store); err != nil {
		return nil, err
	}

	if exists, err = krylib.Fexists(path); err != nil {
		s.log.Printf("[ERROR] Cannot check for data file %s: %s\n",
			path,
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "open", Err: err}
	} else if !exists {
		if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			s.log.Printf("[ERROR] Cannot create data directory %s: %s\n",
				filepath.Dir(path),
				err.Error())
			return nil, &objects.StoreUnavailableError{Op: "open", Err: err}
		} else if err = os.WriteFile(path, []byte("[]"), 0644); err != nil {
			s.log.Printf("[ERROR] Cannot create data file %s: %s\n",
				path,
				err.Error())
			return nil, &objects.StoreUnavailableError{Op: "open", Err: err}
		}

		s.log.Printf("[INFO] Created empty data file %s\n", path)
	}

	return s, nil
} // func Open(path string) (*Store, error)

// LoadAll reads the entire Todo collection from disk.
func (s *Store) LoadAll() ([]objects.Todo, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var (
		err   error
		buf   []byte
		todos []objects.Todo
	)

	if buf, err = os.ReadFile(s.path); err != nil {
		s.log.Printf("[ERROR] Cannot read data file %s: %s\n",
			s.path,
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	} else if err = ffjson.Unmarshal(buf, &todos); err != nil {
		s.log.Printf("[ERROR] Cannot parse data file %s: %s\n",
			s.path,
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "parse", Err: err}
	}

	return todos, nil
} // func (s *Store) LoadAll() ([]objects.Todo, error)

// SaveAll writes the entire Todo collection to disk, replacing the
// previous contents.
func (s *Store) SaveAll(todos []objects.Todo) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	var (
		err error
		buf []byte
		tmp = s.path + ".tmp"
	)

	if todos == nil {
		todos = []objects.Todo{}
	}

	if buf, err = ffjson.Marshal(todos); err != nil {
		s.log.Printf("[ERROR] Cannot serialize Todo collection: %s\n",
			err.Error())
		return &objects.StoreUnavailableError{Op: "serialize", Err: err}
	}

	defer ffjson.Pool(buf)

	if err = os.WriteFile(tmp, buf, 0644); err != nil {
		s.log.Printf("[ERROR] Cannot write data file %s: %s\n",
			tmp,
			err.Error())
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	} else if err = os.Rename(tmp, s.path); err != nil {
		s.log.Printf("[ERROR] Cannot replace data file %s: %s\n",
			s.path,
			err.Error())
		os.Remove(tmp) // nolint: errcheck
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	}

	return nil
} // func (s *Store) SaveAll(todos []objects.Todo) error
