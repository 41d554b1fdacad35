// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/notify/webhook.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 21:29:17 krylon>

package notify

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/pquerna/ffjson/ffjson"
)

// webhookTimeout bounds a single delivery attempt so a slow bot
// backend cannot stall the notification loop.
const webhookTimeout = time.Second * 5

//go:generate ffjson webhook.go

// WebhookMessage is the payload posted to the bot webhook.
type WebhookMessage struct {
	Text string `json:"text"`
}

// Webhook delivers notifications by posting them to a chat bot's
// webhook URL.
type Webhook struct {
	url    string
	client http.Client
}

// NewWebhook creates a Webhook channel posting to the given URL.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		url: url,
		client: http.Client{
			Timeout: webhookTimeout,
		},
	}
} // func NewWebhook(url string) *Webhook

// Name returns the Channel's name.
func (w *Webhook) Name() string {
	return "webhook"
} // func (w *Webhook) Name() string

// Send posts the notification to the webhook.
func (w *Webhook) Send(head, body string) error {
	var (
		err error
		buf []byte
		msg = WebhookMessage{Text: head}
	)

	if body != "" {
		msg.Text += "\n" + body
	}

	if buf, err = ffjson.Marshal(&msg); err != nil {
		return &DeliveryError{Channel: "webhook", Err: err}
	}

	defer ffjson.Pool(buf)

	var res *http.Response

	if res, err = w.client.Post(w.url, "application/json", bytes.NewReader(buf)); err != nil {
		return &DeliveryError{Channel: "webhook", Err: err}
	}

	defer res.Body.Close() // nolint: errcheck

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &DeliveryError{
			Channel: "webhook",
			Err: fmt.Errorf("Webhook returned status %s",
				res.Status),
		}
	}

	return nil
} // func (w *Webhook) Send(head, body string) error
