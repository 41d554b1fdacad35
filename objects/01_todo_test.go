// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/01_todo_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-30 20:10:38 krylon>

package objects

import (
	"strings"
	"testing"
	"time"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects/checkpoint"
)

func TestCheckpointAt(t *testing.T) {
	type testCase struct {
		td     Todo
		expect map[checkpoint.Kind]time.Time
	}

	var cases = []testCase{
		testCase{
			td: Todo{
				ID:    "0001",
				Date:  "2024-01-10",
				Time:  "09:00",
				Thing: "Dentist",
			},
			expect: map[checkpoint.Kind]time.Time{
				checkpoint.DayBefore:  time.Date(2024, 1, 9, 9, 0, 0, 0, common.Location),
				checkpoint.HourBefore: time.Date(2024, 1, 10, 8, 0, 0, 0, common.Location),
				checkpoint.AtTime:     time.Date(2024, 1, 10, 9, 0, 0, 0, common.Location),
			},
		},
		testCase{
			td: Todo{
				ID:    "0002",
				Date:  "2026-03-01",
				Time:  "00:30",
				Thing: "Night shift",
			},
			expect: map[checkpoint.Kind]time.Time{
				checkpoint.DayBefore:  time.Date(2026, 2, 28, 0, 30, 0, 0, common.Location),
				checkpoint.HourBefore: time.Date(2026, 2, 28, 23, 30, 0, 0, common.Location),
				checkpoint.AtTime:     time.Date(2026, 3, 1, 0, 30, 0, 0, common.Location),
			},
		},
	}

	for _, c := range cases {
		var prev time.Time

		for _, k := range checkpoint.All() {
			var (
				err   error
				stamp time.Time
			)

			if stamp, err = c.td.CheckpointAt(k); err != nil {
				t.Errorf("Cannot compute %s checkpoint for Todo %s: %s",
					k,
					c.td.ID,
					err.Error())
				continue
			} else if !stamp.Equal(c.expect[k]) {
				t.Errorf(`Unexpected %s checkpoint for Todo %s:
Expected:       %s
Got:            %s
`,
					k,
					c.td.ID,
					c.expect[k].Format(common.TimestampFormat),
					stamp.Format(common.TimestampFormat))
			}

			if stamp.Before(prev) {
				t.Errorf("Checkpoint %s of Todo %s precedes its predecessor",
					k,
					c.td.ID)
			}

			prev = stamp
		}
	}
} // func TestCheckpointAt(t *testing.T)

func TestInvalidSchedule(t *testing.T) {
	var broken = []Todo{
		Todo{ID: "b1", Date: "", Time: ""},
		Todo{ID: "b2", Date: "2026-13-01", Time: "10:00"},
		Todo{ID: "b3", Date: "2026-08-15", Time: "25:61"},
		Todo{ID: "b4", Date: "someday", Time: "soon"},
	}

	for _, td := range broken {
		var err error

		if _, err = td.DueAt(); err == nil {
			t.Errorf("Expected an error parsing schedule of Todo %s (%q @ %q), got none",
				td.ID,
				td.Date,
				td.Time)
		} else if _, ok := err.(*InvalidScheduleError); !ok {
			t.Errorf("Unexpected error type %T for Todo %s",
				err,
				td.ID)
		}

		if td.IsExpired(time.Now().In(common.Location)) {
			t.Errorf("Todo %s with an unparseable schedule must not count as expired",
				td.ID)
		}
	}
} // func TestInvalidSchedule(t *testing.T)

func TestMarkNotified(t *testing.T) {
	var td = Todo{
		ID:   "0003",
		Date: "2026-09-10",
		Time: "14:00",
	}

	for _, k := range checkpoint.All() {
		if td.NotifiedAbout(k) {
			t.Errorf("Fresh Todo should not have been notified about %s yet",
				k)
		}
	}

	td.MarkNotified(checkpoint.HourBefore)

	if !td.NotifiedAbout(checkpoint.HourBefore) {
		t.Error("HourBefore flag should be set after MarkNotified")
	} else if td.NotifiedAbout(checkpoint.DayBefore) || td.NotifiedAbout(checkpoint.AtTime) {
		t.Error("MarkNotified must not touch the other flags")
	}
} // func TestMarkNotified(t *testing.T)

func TestPayload(t *testing.T) {
	var td = Todo{
		ID:     "0004",
		Date:   "2026-09-10",
		Time:   "14:00",
		Thing:  "Team meeting",
		Person: "Alice",
		Place:  "Room 201",
	}

	var head, body = td.Payload(checkpoint.DayBefore)

	if !strings.Contains(head, "Tomorrow") || !strings.Contains(head, td.Thing) {
		t.Errorf("Unexpected headline for DayBefore notification: %q",
			head)
	} else if !strings.Contains(body, td.Person) || !strings.Contains(body, td.Place) {
		t.Errorf("Body should mention person and place: %q",
			body)
	} else if strings.Contains(body, "📦") {
		t.Errorf("Body should not mention stuff the Todo does not have: %q",
			body)
	}

	head, _ = td.Payload(checkpoint.AtTime)

	if !strings.Contains(head, "Now") {
		t.Errorf("Unexpected headline for AtTime notification: %q",
			head)
	}
} // func TestPayload(t *testing.T)
