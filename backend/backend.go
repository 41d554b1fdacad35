// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 22:10:26 krylon>

// Package backend implements the daemon at the heart of the
// application: the periodic reminder sweep, the notification
// dispatch, and the web interface.
package backend

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/config"
	"github.com/weiyongsheng1124/MoltbotAP-todo/logdomain"
	"github.com/weiyongsheng1124/MoltbotAP-todo/notify"
	"github.com/weiyongsheng1124/MoltbotAP-todo/objects"
)

const (
	queueDepth   = 16
	queueTimeout = time.Second * 2
)

// Store is the persistence contract the Daemon requires. The
// collection is small, it is loaded and saved in one piece.
type Store interface {
	LoadAll() ([]objects.Todo, error)
	SaveAll([]objects.Todo) error
}

// Clock supplies the current instant in the fixed civil timezone.
// It exists so tests can control time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(common.Location)
} // func (systemClock) Now() time.Time

// Daemon is the centerpiece of the backend, coordinating between the
// store, the reminder sweep, the notification channels and the web
// interface.
type Daemon struct {
	log        *log.Logger
	store      Store
	channels   []notify.Channel
	clock      Clock
	lock       sync.RWMutex
	active     bool
	Queue      chan objects.Notification
	web        http.Server
	router     *mux.Router
	dnssd      *zeroconf.Server
	mimeTypes  map[string]string
	hostname   string
	sweepIntv  time.Duration
	storeLock  sync.Mutex
	idLock     sync.Mutex
	idCnt      int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is
// required. The store and the notification channels are passed in by
// the caller, the Daemon never reaches for ambient global state.
func Summon(cfg *config.Config, st Store, channels ...notify.Channel) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			store:     st,
			channels:  channels,
			clock:     systemClock{},
			active:    true,
			sweepIntv: time.Second * time.Duration(cfg.SweepInterval),
			Queue:     make(chan objects.Notification, queueDepth),
			router:    mux.NewRouter(),
			mimeTypes: map[string]string{
				".css":  "text/css",
				".map":  "application/json",
				".js":   "text/javascript",
				".png":  "image/png",
				".jpg":  "image/jpeg",
				".jpeg": "image/jpeg",
				".webp": "image/webp",
				".gif":  "image/gif",
				".json": "application/json",
				".html": "text/html",
			},
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		return nil, err
	}

	if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[WARN] Cannot determine hostname: %s\n",
			err.Error())
		d.hostname = "localhost"
	}

	d.web.Addr = cfg.Addr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	// Stale Todos are cleaned out once, before the first sweep, so a
	// restart after a long downtime does not fire a backlog of
	// reminders whose moment has long passed.
	if err = d.reconcileExpired(); err != nil {
		d.log.Printf("[ERROR] Startup reconciliation failed: %s\n",
			err.Error())
	}

	if err = d.initDNSSd(); err != nil {
		d.log.Printf("[WARN] Continuing without DNS-SD: %s\n",
			err.Error())
	}

	go d.notifyLoop()
	go d.sweepLoop()
	go d.serveHTTP()

	return d, nil
} // func Summon(cfg *config.Config, st Store, channels ...notify.Channel) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if d.dnssd != nil {
		d.dnssd.Shutdown()
		d.dnssd = nil
	}

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

func (d *Daemon) notifyLoop() {
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var tick = time.NewTicker(queueTimeout)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case m := <-d.Queue:
			var head, body = m.Payload()
			d.log.Printf("[DEBUG] Dispatching Notification: %s\n",
				head)

			for _, ch := range d.channels {
				if err := ch.Send(head, body); err != nil {
					d.log.Printf("[ERROR] Failed to post Notification %q via %s: %s\n",
						head,
						ch.Name(),
						err.Error())
				}
			}
		}
	}
} // func (d *Daemon) notifyLoop()

func (d *Daemon) sweepLoop() {
	defer d.log.Println("[TRACE] sweepLoop is shutting down")

	var ticker = time.NewTicker(d.sweepIntv)
	defer ticker.Stop()

	for d.IsAlive() {
		var err error
		<-ticker.C

		if err = d.CheckReminders(); err != nil {
			d.log.Printf("[ERROR] Reminder sweep failed: %s\n",
				err.Error())
		}
	}
} // func (d *Daemon) sweepLoop()

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
