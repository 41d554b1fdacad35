// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-09-01 00:14:02 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weiyongsheng1124/MoltbotAP-todo/backend"
	"github.com/weiyongsheng1124/MoltbotAP-todo/common"
	"github.com/weiyongsheng1124/MoltbotAP-todo/config"
	"github.com/weiyongsheng1124/MoltbotAP-todo/database"
	"github.com/weiyongsheng1124/MoltbotAP-todo/filestore"
	"github.com/weiyongsheng1124/MoltbotAP-todo/notify"
)

func main() {
	fmt.Printf("%s %s (built %s)\n",
		common.AppName,
		common.Version,
		common.BuildStamp)

	var (
		err                           error
		daemon                        *backend.Daemon
		cfg                           *config.Config
		appDir, addr, engine, webhook string
		desktop                       bool
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&addr,
		"address",
		"",
		"Address for the web interface to listen on")

	flag.StringVar(
		&engine,
		"store",
		"",
		"Storage engine to use (\"file\" or \"sqlite\")")

	flag.StringVar(
		&webhook,
		"webhook",
		"",
		"Webhook URL of the chat bot to deliver reminders to")

	flag.BoolVar(
		&desktop,
		"desktop",
		false,
		"Deliver reminders as desktop notifications")

	flag.Parse()

	if err = common.SetBaseDir(appDir); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize application directory %s: %s\n",
			appDir,
			err.Error())
		os.Exit(1)
	}

	if cfg, err = config.Load(common.ConfigPath); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to load configuration: %s\n",
			err.Error())
		os.Exit(1)
	}

	// Flags override the config file.
	if addr != "" {
		cfg.Addr = addr
	}
	if engine != "" {
		cfg.StoreEngine = engine
	}
	if webhook != "" {
		cfg.WebhookURL = webhook
	}
	if desktop {
		cfg.Desktop = true
	}

	var store backend.Store

	switch cfg.StoreEngine {
	case "file":
		if store, err = filestore.Open(common.DataPath); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to open data file %s: %s\n",
				common.DataPath,
				err.Error())
			os.Exit(1)
		}
	case "sqlite":
		if store, err = database.NewPool(4); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to open database %s: %s\n",
				common.DbPath,
				err.Error())
			os.Exit(1)
		}
	default:
		fmt.Fprintf(
			os.Stderr,
			"Unknown storage engine %q\n",
			cfg.StoreEngine)
		os.Exit(1)
	}

	var channels []notify.Channel

	if cfg.Console {
		var cons *notify.Console

		if cons, err = notify.NewConsole(); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to create console notification channel: %s\n",
				err.Error())
			os.Exit(1)
		}

		channels = append(channels, cons)
	}

	if cfg.Desktop {
		var desk *notify.Desktop

		if desk, err = notify.NewDesktop(); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot connect to DBus, continuing without desktop notifications: %s\n",
				err.Error())
		} else {
			channels = append(channels, desk)
		}
	}

	if cfg.WebhookURL != "" {
		channels = append(channels, notify.NewWebhook(cfg.WebhookURL))
	}

	if daemon, err = backend.Summon(cfg, store, channels...); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize backend: %s\n",
			err.Error())
		os.Exit(1)
	}

	var sigQ = make(chan os.Signal, 1)
	var ticker = time.NewTicker(time.Second * 2)

	signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	for daemon.IsAlive() {
		select {
		case sig := <-sigQ:
			fmt.Printf("Quitting on signal %s\n", sig)
			daemon.Banish() // nolint: errcheck
			os.Exit(0)
		case <-ticker.C:
			continue
		}
	}
}
