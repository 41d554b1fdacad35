// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 16:44:21 krylon>

package backend

import (
	"sort"

	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

// sortTodos orders the collection the way the client displays it,
// by date, then time of day, then title.
func sortTodos(todos []objects.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		if todos[i].Date != todos[j].Date {
			return todos[i].Date < todos[j].Date
		} else if todos[i].Time != todos[j].Time {
			return todos[i].Time < todos[j].Time
		}

		return todos[i].Thing < todos[j].Thing
	})
} // func sortTodos(todos []objects.Todo)
