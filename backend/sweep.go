// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/sweep.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 22:26:51 krylon>

package backend

import (
	"time"

	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects/checkpoint"
)

// CheckReminders runs one sweep over the Todo collection, firing any
// newly due notifications. The periodic tick and the manual trigger
// from the web interface both end up here; if a sweep is already in
// progress, the call is skipped rather than queued.
func (d *Daemon) CheckReminders() error {
	var (
		err    error
		events []objects.Event
	)

	if events, err = d.sweep(); err != nil {
		return err
	}

	for idx := range events {
		d.dispatch(&events[idx])
	}

	return nil
} // func (d *Daemon) CheckReminders() error

func (d *Daemon) sweep() ([]objects.Event, error) {
	if !d.storeLock.TryLock() {
		d.log.Println("[DEBUG] A sweep is already in progress, skipping this tick")
		return nil, nil
	}
	defer d.storeLock.Unlock()

	// Checkpoints are compared at minute resolution, a Todo becomes
	// due from the start of its checkpoint minute.
	var (
		err   error
		todos []objects.Todo
		now   = d.clock.Now().Truncate(time.Minute)
	)

	if todos, err = d.store.LoadAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Todos, abandoning this tick: %s\n",
			err.Error())
		return nil, err
	}

	var (
		events []objects.Event
		dirty  bool
	)

	for idx := range todos {
		var td = &todos[idx]

		if td.Completed {
			continue
		}

		for _, k := range checkpoint.All() {
			var stamp time.Time

			if stamp, err = td.CheckpointAt(k); err != nil {
				d.log.Printf("[WARN] Skipping Todo %s for this sweep: %s\n",
					td.ID,
					err.Error())
				break
			}

			if !td.NotifiedAbout(k) && !now.Before(stamp) {
				td.MarkNotified(k)
				td.Changed = now
				dirty = true
				events = append(events, objects.Event{Todo: *td, Kind: k})
			}
		}
	}

	// Flags go to disk before any notification is dispatched. If
	// dispatch fails afterwards, the reminder is lost, which beats
	// delivering it twice.
	if dirty {
		if err = d.store.SaveAll(todos); err != nil {
			d.log.Printf("[ERROR] Cannot persist notification state, dropping %d events: %s\n",
				len(events),
				err.Error())
			return nil, err
		}
	}

	return events, nil
} // func (d *Daemon) sweep() ([]objects.Event, error)

func (d *Daemon) dispatch(ev *objects.Event) {
	select {
	case d.Queue <- ev:
	default:
		var head, _ = ev.Payload()
		d.log.Printf("[WARN] Notification queue is full, dropping %q\n",
			head)
	}
} // func (d *Daemon) dispatch(ev *objects.Event)

// reconcileExpired removes incomplete Todos whose scheduled time has
// fully elapsed. It runs once, at startup, never per sweep - running
// it per sweep would silently delete Todos whose reminders are merely
// a minute late.
func (d *Daemon) reconcileExpired() error {
	d.storeLock.Lock()
	defer d.storeLock.Unlock()

	var (
		err   error
		todos []objects.Todo
		now   = d.clock.Now().Truncate(time.Minute)
	)

	if todos, err = d.store.LoadAll(); err != nil {
		return err
	}

	var keep = make([]objects.Todo, 0, len(todos))

	for idx := range todos {
		var td = &todos[idx]

		if !td.Completed && td.IsExpired(now) {
			d.log.Printf("[INFO] Removing expired Todo %s (%q, due %s %s)\n",
				td.ID,
				td.Thing,
				td.Date,
				td.Time)
			continue
		}

		keep = append(keep, *td)
	}

	if len(keep) != len(todos) {
		if err = d.store.SaveAll(keep); err != nil {
			return err
		}

		d.log.Printf("[INFO] Startup reconciliation removed %d expired Todos\n",
			len(todos)-len(keep))
	}

	return nil
} // func (d *Daemon) reconcileExpired() error
