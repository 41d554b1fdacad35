// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-12 19:05:47 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client after processing a request.
type Response struct {
	ID      int64
	Status  bool
	Message string
}
