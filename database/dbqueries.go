// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-22 20:26:49 krylon>

package database

import "github.com/weiyongsheng1124/MoltbotAP-todo/database/query"

var dbQueries = map[query.ID]string{
	query.TodoInsert: `
INSERT INTO todo (id, date, time, thing, person, place, stuff, completed, notified_day_before, notified_hour_before, notified, changed)
VALUES           ( ?,    ?,    ?,     ?,      ?,     ?,     ?,         ?,                   ?,                    ?,        ?,       ?)
`,
	query.TodoClear: "DELETE FROM todo",
	query.TodoGetAll: `
SELECT
    id,
    date,
    time,
    thing,
    person,
    place,
    stuff,
    completed,
    notified_day_before,
    notified_hour_before,
    notified,
    changed
FROM todo
ORDER BY date, time, thing
`,
	query.TodoGetByID: `
SELECT
    date,
    time,
    thing,
    person,
    place,
    stuff,
    completed,
    notified_day_before,
    notified_hour_before,
    notified,
    changed
FROM todo
WHERE id = ?
`,
}
