// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/notify/01_webhook_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:36:02 krylon>

package notify

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebhookSend(t *testing.T) {
	var received string

	var srv = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			var buf, _ = io.ReadAll(r.Body)
			received = string(buf)
			w.WriteHeader(200)
		}))
	defer srv.Close()

	var (
		err error
		w   = NewWebhook(srv.URL)
	)

	if err = w.Send("Tomorrow at 09:00 - Dentist", "📍 Downtown"); err != nil {
		t.Fatalf("Cannot deliver notification: %s",
			err.Error())
	} else if !strings.Contains(received, "Dentist") || !strings.Contains(received, "Downtown") {
		t.Errorf("Webhook payload is missing parts of the message: %q",
			received)
	}
} // func TestWebhookSend(t *testing.T)

func TestWebhookSendFailure(t *testing.T) {
	var srv = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		}))
	defer srv.Close()

	var (
		err error
		w   = NewWebhook(srv.URL)
	)

	if err = w.Send("Now (09:00)", ""); err == nil {
		t.Error("Expected an error delivering to a failing webhook, got none")
	} else if _, ok := err.(*DeliveryError); !ok {
		t.Errorf("Unexpected error type %T", err)
	}
} // func TestWebhookSendFailure(t *testing.T)
