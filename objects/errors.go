// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/errors.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-26 18:33:02 krylon>

package objects

import "fmt"

// InvalidScheduleError indicates a Todo whose date or time cannot be
// parsed. The offending Todo is skipped for the current sweep, it is
// neither modified nor removed.
type InvalidScheduleError struct {
	ID   string
	Date string
	Time string
	Err  error
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("Todo %s has an invalid schedule (%q @ %q): %s",
		e.ID,
		e.Date,
		e.Time,
		e.Err.Error())
} // func (e *InvalidScheduleError) Error() string

func (e *InvalidScheduleError) Unwrap() error {
	return e.Err
} // func (e *InvalidScheduleError) Unwrap() error

// StoreUnavailableError indicates the backing medium of the Store
// could not be read or written. The entire tick is abandoned and
// retried on the next interval.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("Store is unavailable (%s): %s",
		e.Op,
		e.Err.Error())
} // func (e *StoreUnavailableError) Error() string

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
} // func (e *StoreUnavailableError) Unwrap() error
