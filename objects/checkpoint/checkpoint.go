// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/checkpoint/checkpoint.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 17:44:10 krylon>

//go:generate stringer -type=Kind

// Package checkpoint contains symbolic constants for the reminder
// checkpoints derived from a Todo's scheduled date and time.
package checkpoint

import "time"

// Kind identifies one of the three reminder checkpoints.
type Kind uint8

// DayBefore fires 24 hours ahead of the scheduled time,
// HourBefore one hour ahead, AtTime at the scheduled time itself.
const (
	DayBefore Kind = iota
	HourBefore
	AtTime
)

// All returns the checkpoints in ascending chronological order.
// The sweep evaluates them in this order so a very overdue Todo
// fires its reminders in narrative order.
func All() []Kind {
	return []Kind{
		DayBefore,
		HourBefore,
		AtTime,
	}
} // func All() []Kind

// Offset returns the Kind's offset relative to the scheduled time.
func (k Kind) Offset() time.Duration {
	switch k {
	case DayBefore:
		return -24 * time.Hour
	case HourBefore:
		return -time.Hour
	default:
		return 0
	}
} // func (k Kind) Offset() time.Duration
