// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-11 20:03:51 krylon>

// Package logdomain provides symbolic constants to identify the
// various "areas" of the application that perform logging.
package logdomain

//go:generate stringer -type=ID

// ID represents an area of the application.
type ID uint8

// These constants identify the log sources.
const (
	Common ID = iota
	Backend
	Database
	Store
	Notify
	DNSSD
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Database,
		Store,
		Notify,
		DNSSD,
	}
} // func AllDomains() []ID
