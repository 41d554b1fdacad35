// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/config/01_config_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 20:52:26 krylon>

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	var (
		err error
		cfg *Config
	)

	if cfg, err = Load(filepath.Join(os.TempDir(), "does-not-exist.toml")); err != nil {
		t.Fatalf("Loading a missing config file should yield defaults, got error: %s",
			err.Error())
	} else if cfg.StoreEngine != DefaultStoreEngine {
		t.Errorf("Unexpected store engine %q (expected %q)",
			cfg.StoreEngine,
			DefaultStoreEngine)
	} else if cfg.SweepInterval != DefaultSweepInterval {
		t.Errorf("Unexpected sweep interval %d (expected %d)",
			cfg.SweepInterval,
			DefaultSweepInterval)
	}
} // func TestLoadMissing(t *testing.T)

func TestLoadFile(t *testing.T) {
	const body = `
address = "0.0.0.0:8080"
store = "sqlite"
sweep_interval = 30
desktop = true
webhook_url = "http://localhost:9090/hook"
`

	var (
		err  error
		cfg  *Config
		path = filepath.Join(t.TempDir(), "config.toml")
	)

	if err = os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Cannot write test config: %s", err.Error())
	}

	if cfg, err = Load(path); err != nil {
		t.Fatalf("Cannot load config: %s", err.Error())
	} else if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Unexpected address %q", cfg.Addr)
	} else if cfg.StoreEngine != "sqlite" {
		t.Errorf("Unexpected store engine %q", cfg.StoreEngine)
	} else if cfg.SweepInterval != 30 {
		t.Errorf("Unexpected sweep interval %d", cfg.SweepInterval)
	} else if !cfg.Desktop {
		t.Error("Desktop channel should be enabled")
	} else if !cfg.Console {
		t.Error("Console channel should still default to enabled")
	} else if cfg.WebhookURL != "http://localhost:9090/hook" {
		t.Errorf("Unexpected webhook URL %q", cfg.WebhookURL)
	}
} // func TestLoadFile(t *testing.T)

func TestLoadInvalid(t *testing.T) {
	var cases = []string{
		`store = "postgres"`,
		`sweep_interval = 0`,
	}

	for _, body := range cases {
		var (
			err  error
			path = filepath.Join(t.TempDir(), "config.toml")
		)

		if err = os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("Cannot write test config: %s", err.Error())
		}

		if _, err = Load(path); err == nil {
			t.Errorf("Expected an error loading config %q, got none",
				body)
		}
	}
} // func TestLoadInvalid(t *testing.T)
