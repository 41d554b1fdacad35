// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/notify/console.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:11:54 krylon>

package notify

import (
	"log"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/logdomain"
)

// Console delivers notifications as log messages.
type Console struct {
	log *log.Logger
}

// NewConsole creates a Console channel.
func NewConsole() (*Console, error) {
	var (
		err error
		c   = new(Console)
	)

	if c.log, err = common.GetLogger(logdomain.Notify); err != nil {
		return nil, err
	}

	return c, nil
} // func NewConsole() (*Console, error)

// Name returns the Channel's name.
func (c *Console) Name() string {
	return "console"
} // func (c *Console) Name() string

// Send logs the notification.
func (c *Console) Send(head, body string) error {
	if body != "" {
		c.log.Printf("[INFO] REMINDER %s\n%s\n",
			head,
			body)
	} else {
		c.log.Printf("[INFO] REMINDER %s\n",
			head)
	}

	return nil
} // func (c *Console) Send(head, body string) error
