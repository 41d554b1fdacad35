// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/dnssd.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 17:02:15 krylon>

package backend

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/grandcat/zeroconf"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
)

const (
	srvService = "_http._tcp"
	srvDomain  = "local."
)

var addrPat = regexp.MustCompile(`:(\d+)$`)

// parseListenPort extracts the TCP port from a listen address like
// "localhost:7202".
func parseListenPort(addr string) (int, error) {
	var (
		err   error
		match []string
		port  int64
	)

	if match = addrPat.FindStringSubmatch(addr); match == nil {
		return 0, fmt.Errorf("Cannot extract HTTP port from server address %q",
			addr)
	} else if port, err = strconv.ParseInt(match[1], 10, 32); err != nil {
		return 0, fmt.Errorf("Cannot parse HTTP port from server address %q: %s",
			addr,
			err.Error())
	} else if port > 65535 {
		return 0, fmt.Errorf("Invalid HTTP port %d in server address %q",
			port,
			addr)
	}

	return int(port), nil
} // func parseListenPort(addr string) (int, error)

// initDNSSd advertises the web interface via DNS-SD, so the browser
// client can find the daemon on the local network. Failure to
// register is not fatal, the daemon just stays unadvertised.
func (d *Daemon) initDNSSd() error {
	var (
		err  error
		port int
		srv  *zeroconf.Server
	)

	if port, err = parseListenPort(d.web.Addr); err != nil {
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	var txt = []string{"txtv=0"}

	var instanceName = fmt.Sprintf("%s@%s",
		common.AppName,
		d.hostname)

	if srv, err = zeroconf.Register(instanceName, srvService, srvDomain, port, txt, nil); err != nil {
		d.log.Printf("[ERROR] Cannot register service with DNS-SD: %s\n",
			err.Error())
		return err
	}

	d.dnssd = srv
	return nil
} // func (d *Daemon) initDNSSd() error
