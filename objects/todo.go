// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/todo.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 19:21:36 krylon>

package objects

import (
	"fmt"
	"strings"
	"time"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects/checkpoint"
)

//go:generate ffjson todo.go

// Todo is a single scheduled task.
// Date and Time are civil date and time-of-day in the fixed timezone,
// stored in the same textual form the web client submits.
// The three Notified* flags record which reminder checkpoints have
// already fired; they only ever go from false to true.
type Todo struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Thing              string    `json:"thing"`
	Person             string    `json:"person"`
	Place              string    `json:"place"`
	Stuff              string    `json:"stuff"`
	Completed          bool      `json:"completed"`
	NotifiedDayBefore  bool      `json:"notifiedDayBefore"`
	NotifiedHourBefore bool      `json:"notifiedHourBefore"`
	Notified           bool      `json:"notified"`
	Changed            time.Time `json:"changed"`
}

// DueAt returns the instant the Todo is scheduled for, i.e. its Date
// and Time combined, in the fixed civil timezone.
func (t *Todo) DueAt() (time.Time, error) {
	var (
		err error
		due time.Time
	)

	if due, err = time.ParseInLocation(
		common.TimestampFormatMinute,
		t.Date+" "+t.Time,
		common.Location); err != nil {
		return due, &InvalidScheduleError{
			ID:   t.ID,
			Date: t.Date,
			Time: t.Time,
			Err:  err,
		}
	}

	return due, nil
} // func (t *Todo) DueAt() (time.Time, error)

// CheckpointAt returns the instant at which the given checkpoint
// becomes due.
func (t *Todo) CheckpointAt(k checkpoint.Kind) (time.Time, error) {
	var (
		err error
		due time.Time
	)

	if due, err = t.DueAt(); err != nil {
		return due, err
	}

	return due.Add(k.Offset()), nil
} // func (t *Todo) CheckpointAt(k checkpoint.Kind) (time.Time, error)

// NotifiedAbout returns true if the notification for the given
// checkpoint has already fired.
func (t *Todo) NotifiedAbout(k checkpoint.Kind) bool {
	switch k {
	case checkpoint.DayBefore:
		return t.NotifiedDayBefore
	case checkpoint.HourBefore:
		return t.NotifiedHourBefore
	default:
		return t.Notified
	}
} // func (t *Todo) NotifiedAbout(k checkpoint.Kind) bool

// MarkNotified sets the flag for the given checkpoint.
// Flags are one-way, there is no way to clear one.
func (t *Todo) MarkNotified(k checkpoint.Kind) {
	switch k {
	case checkpoint.DayBefore:
		t.NotifiedDayBefore = true
	case checkpoint.HourBefore:
		t.NotifiedHourBefore = true
	default:
		t.Notified = true
	}
} // func (t *Todo) MarkNotified(k checkpoint.Kind)

// IsExpired returns true if the Todo's scheduled time is strictly in
// the past relative to the given reference time.
// A Todo whose schedule cannot be parsed is never considered expired.
func (t *Todo) IsExpired(now time.Time) bool {
	var (
		err error
		due time.Time
	)

	if due, err = t.DueAt(); err != nil {
		return false
	}

	return due.Before(now)
} // func (t *Todo) IsExpired(now time.Time) bool

// Payload renders the notification for the given checkpoint,
// returning a headline and a body.
func (t *Todo) Payload(k checkpoint.Kind) (string, string) {
	var head string

	switch k {
	case checkpoint.DayBefore:
		head = fmt.Sprintf("Tomorrow at %s", t.Time)
	case checkpoint.HourBefore:
		head = fmt.Sprintf("In one hour (%s)", t.Time)
	default:
		head = fmt.Sprintf("Now (%s)", t.Time)
	}

	if t.Thing != "" {
		head += " - " + t.Thing
	}

	var lines = make([]string, 0, 3)

	if t.Person != "" {
		lines = append(lines, "👤 "+t.Person)
	}

	if t.Place != "" {
		lines = append(lines, "📍 "+t.Place)
	}

	if t.Stuff != "" {
		lines = append(lines, "📦 "+t.Stuff)
	}

	return head, strings.Join(lines, "\n")
} // func (t *Todo) Payload(k checkpoint.Kind) (string, string)
