// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-22 20:11:30 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE todo (
    id                   TEXT PRIMARY KEY,
    date                 TEXT NOT NULL,
    time                 TEXT NOT NULL,
    thing                TEXT NOT NULL,
    person               TEXT NOT NULL DEFAULT '',
    place                TEXT NOT NULL DEFAULT '',
    stuff                TEXT NOT NULL DEFAULT '',
    completed            INTEGER NOT NULL DEFAULT 0,
    notified_day_before  INTEGER NOT NULL DEFAULT 0,
    notified_hour_before INTEGER NOT NULL DEFAULT 0,
    notified             INTEGER NOT NULL DEFAULT 0,
    changed              INTEGER NOT NULL
)
`,
	"CREATE INDEX todo_date_idx ON todo (date)",
	"CREATE INDEX todo_completed_idx ON todo (completed)",
}
