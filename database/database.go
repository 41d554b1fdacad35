// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 19:47:21 krylon>

// Package database persists the Todo collection to an SQLite database.
// Like the flat-file store it only deals in whole collections, SaveAll
// replaces the stored collection in a single transaction.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/mattn/go-sqlite3"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/database/query"
	"github.com/weiyongsheng1124/MoltbotAP-todo/logdomain"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

var openLock sync.Mutex

const retryDelay = time.Millisecond * 25

func worthARetry(e error) bool {
	var sqlErr sqlite3.Error

	if !errors.As(e, &sqlErr) {
		return false
	}

	return sqlErr.Code == sqlite3.ErrBusy || sqlErr.Code == sqlite3.ErrLocked
} // func worthARetry(e error) bool

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is a connection to the SQLite database, including a cache
// of prepared queries.
type Database struct {
	id      int64
	db      *sql.DB
	tx      *sql.Tx
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

var idCnt int64

// Open opens the database at the given path, initializing the schema
// if the file did not exist before.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt, len(dbQueries)),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Cannot check if database file %s exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Cannot open database at %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			db.db.Close() // nolint: errcheck
			return nil, err
		}
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction to initialize database: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query:\n%s\n%s\n",
				q,
				err.Error())
			tx.Rollback() // nolint: errcheck
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[ERROR] Cannot commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database connection.
func (db *Database) Close() error {
	for id, stmt := range db.queries {
		stmt.Close() // nolint: errcheck
		delete(db.queries, id)
	}

	if err := db.db.Close(); err != nil {
		db.log.Printf("[ERROR] Cannot close database: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		err  error
		stmt *sql.Stmt
		ok   bool
	)

	if stmt, ok = db.queries[id]; ok {
		return stmt, nil
	}

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(id query.ID) (*sql.Stmt, error)

// Begin starts a transaction.
func (db *Database) Begin() error {
	var (
		err error
		tx  *sql.Tx
	)

	if db.tx != nil {
		return fmt.Errorf("Database #%d already has an open transaction",
			db.id)
	}

BEGIN_TX:
	if tx, err = db.db.Begin(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto BEGIN_TX
		}

		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	db.tx = tx
	return nil
} // func (db *Database) Begin() error

// Commit commits the open transaction.
func (db *Database) Commit() error {
	if db.tx == nil {
		return fmt.Errorf("Database #%d has no open transaction to commit",
			db.id)
	}

	var err = db.tx.Commit()
	db.tx = nil

	if err != nil {
		db.log.Printf("[ERROR] Cannot commit transaction: %s\n",
			err.Error())
	}

	return err
} // func (db *Database) Commit() error

// Rollback aborts the open transaction.
func (db *Database) Rollback() error {
	if db.tx == nil {
		return fmt.Errorf("Database #%d has no open transaction to rollback",
			db.id)
	}

	var err = db.tx.Rollback()
	db.tx = nil

	if err != nil {
		db.log.Printf("[ERROR] Cannot rollback transaction: %s\n",
			err.Error())
	}

	return err
} // func (db *Database) Rollback() error

// LoadAll reads the entire Todo collection from the database.
func (db *Database) LoadAll() ([]objects.Todo, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = db.getQuery(query.TodoGetAll); err != nil {
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	}

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query all Todos: %s\n",
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	}

	defer rows.Close() // nolint: errcheck

	var todos = make([]objects.Todo, 0, 16)

	for rows.Next() {
		var (
			td      objects.Todo
			changed int64
		)

		if err = rows.Scan(
			&td.ID,
			&td.Date,
			&td.Time,
			&td.Thing,
			&td.Person,
			&td.Place,
			&td.Stuff,
			&td.Completed,
			&td.NotifiedDayBefore,
			&td.NotifiedHourBefore,
			&td.Notified,
			&changed); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
		}

		td.Changed = time.Unix(changed, 0).In(common.Location)
		todos = append(todos, td)
	}

	return todos, nil
} // func (db *Database) LoadAll() ([]objects.Todo, error)

// SaveAll replaces the stored Todo collection in a single transaction.
func (db *Database) SaveAll(todos []objects.Todo) error {
	var (
		err                  error
		clearStmt, insrtStmt *sql.Stmt
		status               bool
	)

	if clearStmt, err = db.getQuery(query.TodoClear); err != nil {
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	} else if insrtStmt, err = db.getQuery(query.TodoInsert); err != nil {
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	} else if err = db.Begin(); err != nil {
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	}

	defer func() {
		if status {
			db.Commit() // nolint: errcheck
		} else {
			db.Rollback() // nolint: errcheck
		}
	}()

	if _, err = db.tx.Stmt(clearStmt).Exec(); err != nil {
		db.log.Printf("[ERROR] Cannot clear todo table: %s\n",
			err.Error())
		return &objects.StoreUnavailableError{Op: "write", Err: err}
	}

	var ins = db.tx.Stmt(insrtStmt)

	for idx := range todos {
		var td = &todos[idx]

		if _, err = ins.Exec(
			td.ID,
			td.Date,
			td.Time,
			td.Thing,
			td.Person,
			td.Place,
			td.Stuff,
			td.Completed,
			td.NotifiedDayBefore,
			td.NotifiedHourBefore,
			td.Notified,
			td.Changed.Unix()); err != nil {
			db.log.Printf("[ERROR] Cannot insert Todo %s (%q): %s\n",
				td.ID,
				td.Thing,
				err.Error())
			return &objects.StoreUnavailableError{Op: "write", Err: err}
		}
	}

	status = true
	return nil
} // func (db *Database) SaveAll(todos []objects.Todo) error

// TodoGetByID looks up a single Todo by its ID, returning nil if it is
// not in the database.
func (db *Database) TodoGetByID(id string) (*objects.Todo, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = db.getQuery(query.TodoGetByID); err != nil {
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	}

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query Todo %s: %s\n",
			id,
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	}

	defer rows.Close() // nolint: errcheck

	if !rows.Next() {
		return nil, nil
	}

	var (
		td      = objects.Todo{ID: id}
		changed int64
	)

	if err = rows.Scan(
		&td.Date,
		&td.Time,
		&td.Thing,
		&td.Person,
		&td.Place,
		&td.Stuff,
		&td.Completed,
		&td.NotifiedDayBefore,
		&td.NotifiedHourBefore,
		&td.Notified,
		&changed); err != nil {
		db.log.Printf("[ERROR] Cannot scan row: %s\n",
			err.Error())
		return nil, &objects.StoreUnavailableError{Op: "read", Err: err}
	}

	td.Changed = time.Unix(changed, 0).In(common.Location)
	return &td, nil
} // func (db *Database) TodoGetByID(id string) (*objects.Todo, error)
