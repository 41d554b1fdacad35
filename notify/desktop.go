// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/notify/desktop.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:20:41 krylon>

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
)

// Desktop delivers notifications to the desktop environment via DBus.
type Desktop struct {
	bus *dbus.Conn
}

// NewDesktop connects to the DBus session bus and returns the channel.
func NewDesktop() (*Desktop, error) {
	var (
		err error
		d   = new(Desktop)
	)

	if d.bus, err = dbus.SessionBus(); err != nil {
		return nil, &DeliveryError{Channel: "desktop", Err: err}
	}

	return d, nil
} // func NewDesktop() (*Desktop, error)

// Name returns the Channel's name.
func (d *Desktop) Name() string {
	return "desktop"
} // func (d *Desktop) Name() string

// Send posts the notification on the session bus.
func (d *Desktop) Send(head, body string) error {
	var obj = d.bus.Object(notifyObj, notifyPath)

	if obj == nil {
		return &DeliveryError{
			Channel: "desktop",
			Err: fmt.Errorf("Did not find object %s (%s) on session bus",
				notifyObj,
				notifyPath),
		}
	}

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(0),
	)

	if res.Err != nil {
		return &DeliveryError{Channel: "desktop", Err: res.Err}
	}

	return nil
} // func (d *Desktop) Send(head, body string) error
