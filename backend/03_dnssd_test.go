// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/backend/03_dnssd_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 09. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-09-01 10:12:44 krylon>

package backend

import "testing"

func TestParseListenPort(t *testing.T) {
	type testCase struct {
		addr        string
		port        int
		expectError bool
	}

	var cases = []testCase{
		testCase{addr: "localhost:7202", port: 7202},
		testCase{addr: ":80", port: 80},
		testCase{addr: "[::1]:50000", port: 50000},
		testCase{addr: "0.0.0.0:65535", port: 65535},
		testCase{addr: "localhost:65536", expectError: true},
		testCase{addr: "localhost", expectError: true},
		testCase{addr: "localhost:", expectError: true},
	}

	for _, c := range cases {
		var port, err = parseListenPort(c.addr)

		if c.expectError {
			if err == nil {
				t.Errorf("Parsing %q should have failed, got port %d",
					c.addr,
					port)
			}
		} else if err != nil {
			t.Errorf("Cannot parse %q: %s",
				c.addr,
				err.Error())
		} else if port != c.port {
			t.Errorf("Parsing %q: expected port %d, got %d",
				c.addr,
				c.port,
				port)
		}
	}
} // func TestParseListenPort(t *testing.T)
