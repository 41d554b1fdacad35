// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-22 19:54:07 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

type ID uint8

const (
	TodoInsert ID = iota
	TodoClear
	TodoGetAll
	TodoGetByID
)
