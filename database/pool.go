// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 20:05:12 krylon>

package database

import (
	"sync"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

// Pool is a fixed-size pool of database connections, so the web
// handlers and the sweep do not have to share a single connection.
type Pool struct {
	lock sync.Mutex
	cond *sync.Cond
	pool []*Database
}

// NewPool opens cnt connections to the database at the default path
// and returns the pool containing them.
func NewPool(cnt int) (*Pool, error) {
	var p = &Pool{
		pool: make([]*Database, 0, cnt),
	}

	p.cond = sync.NewCond(&p.lock)

	for i := 0; i < cnt; i++ {
		var (
			err error
			db  *Database
		)

		if db, err = Open(common.DbPath); err != nil {
			p.Close() // nolint: errcheck
			return nil, err
		}

		p.pool = append(p.pool, db)
	}

	return p, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a connection from the Pool, blocking until one is
// available.
func (p *Pool) Get() *Database {
	p.lock.Lock()
	defer p.lock.Unlock()

	for len(p.pool) == 0 {
		p.cond.Wait()
	}

	var db = p.pool[len(p.pool)-1]
	p.pool = p.pool[:len(p.pool)-1]

	return db
} // func (p *Pool) Get() *Database

// Put returns a connection to the Pool.
func (p *Pool) Put(db *Database) {
	p.lock.Lock()
	p.pool = append(p.pool, db)
	p.cond.Signal()
	p.lock.Unlock()
} // func (p *Pool) Put(db *Database)

// Close closes all connections currently in the Pool.
func (p *Pool) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	var err error

	for _, db := range p.pool {
		if e := db.Close(); e != nil {
			err = e
		}
	}

	p.pool = p.pool[:0]
	return err
} // func (p *Pool) Close() error

// LoadAll reads the entire Todo collection, using a connection from
// the Pool.
func (p *Pool) LoadAll() ([]objects.Todo, error) {
	var db = p.Get()
	defer p.Put(db)

	return db.LoadAll()
} // func (p *Pool) LoadAll() ([]objects.Todo, error)

// SaveAll replaces the stored Todo collection, using a connection from
// the Pool.
func (p *Pool) SaveAll(todos []objects.Todo) error {
	var db = p.Get()
	defer p.Put(db)

	return db.SaveAll(todos)
} // func (p *Pool) SaveAll(todos []objects.Todo) error
