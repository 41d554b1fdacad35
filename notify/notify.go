// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/notify/notify.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:08:33 krylon>

// Package notify delivers reminder notifications to the user.
// Delivery is fire-and-forget, a failed Send is logged by the caller
// and never retried.
package notify

import "fmt"

// Channel is a way of delivering a notification to the user.
type Channel interface {
	Name() string
	Send(head, body string) error
}

// DeliveryError indicates a notification could not be delivered.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Cannot deliver notification via %s: %s",
		e.Channel,
		e.Err.Error())
} // func (e *DeliveryError) Error() string

func (e *DeliveryError) Unwrap() error {
	return e.Err
} // func (e *DeliveryError) Unwrap() error
