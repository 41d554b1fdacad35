// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/config/config.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-31 20:44:02 krylon>

// Package config handles the configuration file. Values not present
// in the file keep their defaults, command line flags override both.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
)

// Default values.
const (
	DefaultStoreEngine   = "file"
	DefaultSweepInterval = 60
	DefaultConsole       = true
	DefaultDesktop       = false
)

// Config holds the daemon's configuration.
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `toml:"address"`

	// StoreEngine selects the persistence backend, "file" or "sqlite".
	StoreEngine string `toml:"store"`

	// SweepInterval is the reminder check interval in seconds.
	SweepInterval int `toml:"sweep_interval"`

	// Console, Desktop and WebhookURL select the notification
	// channels. Any combination may be active.
	Console    bool   `toml:"console"`
	Desktop    bool   `toml:"desktop"`
	WebhookURL string `toml:"webhook_url"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Addr:          fmt.Sprintf("localhost:%d", common.DefaultPort),
		StoreEngine:   DefaultStoreEngine,
		SweepInterval: DefaultSweepInterval,
		Console:       DefaultConsole,
		Desktop:       DefaultDesktop,
	}
} // func Default() *Config

// Load reads the configuration file at the given path. A missing file
// is not an error, the defaults are returned in that case.
func Load(path string) (*Config, error) {
	var (
		err error
		cfg = Default()
	)

	if _, err = toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("Cannot read config file %s: %w",
			path,
			err)
	}

	if cfg.StoreEngine != "file" && cfg.StoreEngine != "sqlite" {
		return nil, fmt.Errorf("Invalid store engine %q (must be \"file\" or \"sqlite\")",
			cfg.StoreEngine)
	} else if cfg.SweepInterval < 1 {
		return nil, fmt.Errorf("Invalid sweep interval %d (must be at least 1 second)",
			cfg.SweepInterval)
	}

	return cfg, nil
} // func Load(path string) (*Config, error)
