// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-18 21:40:12 krylon>

// Package objects provides the data types used by the application.
package objects

import "github.com/weiyongsheng1124/MoltbotAP-todo/objects/checkpoint"

// Notification is the common interface for items the user should be
// notified about.
type Notification interface {
	Payload() (string, string)
}

// Event records that a reminder checkpoint for a Todo has become due.
type Event struct {
	Todo Todo
	Kind checkpoint.Kind
}

// Payload renders the Event's notification message.
func (e *Event) Payload() (string, string) {
	return e.Todo.Payload(e.Kind)
} // func (e *Event) Payload() (string, string)
