// /home/krylon/go/src/github.com/weiyongsheng1124/MoltbotAP-todo/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 08. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 18:12:44 krylon>

// Package common provides constants and functions used throughout
// the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blicero/krylib"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
	"github.com/weiyongsheng1124/MoltbotAP-todo/logdomain"
)

// Debug, if true, causes the application to log additional messages.
// AppName and Version identify the application.
// TimeZone is the fixed civil timezone all scheduling arithmetic
// is performed in.
const (
	Debug                 = true
	AppName               = "MoltbotAP-Todo"
	Version               = "0.4.2"
	TimestampFormat       = "2006-01-02 15:04:05"
	TimestampFormatMinute = "2006-01-02 15:04"
	TimestampFormatDate   = "2006-01-02"
	TimestampFormatTime   = "15:04"
	TimeZone              = "Asia/Taipei"
	DefaultPort           = 7202
	MinLogLevel           = "TRACE"
)

// BuildStamp is the time at which the application was built,
// set by the linker.
var BuildStamp = "(unknown)"

// Location is the fixed civil timezone (UTC+8).
var Location *time.Location

func init() {
	var err error
	if Location, err = time.LoadLocation(TimeZone); err != nil {
		Location = time.FixedZone("UTC+8", 8*60*60)
	}
} // func init()

// BaseDir is the directory where the application stores its files.
var (
	BaseDir    = filepath.Join(os.Getenv("HOME"), ".moltbot-todo.d")
	LogPath    = filepath.Join(BaseDir, "moltbot-todo.log")
	DbPath     = filepath.Join(BaseDir, "moltbot-todo.db")
	DataPath   = filepath.Join(BaseDir, "todos.json")
	ConfigPath = filepath.Join(BaseDir, "config.toml")
	AssetPath  = filepath.Join(BaseDir, "public")
)

// SetBaseDir sets the application's base directory and adjusts the
// paths of the various files the application uses accordingly.
func SetBaseDir(path string) error {
	BaseDir = path
	LogPath = filepath.Join(BaseDir, "moltbot-todo.log")
	DbPath = filepath.Join(BaseDir, "moltbot-todo.db")
	DataPath = filepath.Join(BaseDir, "todos.json")
	ConfigPath = filepath.Join(BaseDir, "config.toml")
	AssetPath = filepath.Join(BaseDir, "public")

	if err := InitApp(); err != nil {
		fmt.Fprintf(os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// LogLevels are the log levels, in ascending order of severity,
// recognized by the logging facility.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// GetLogger returns a Logger for the given log source.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err     error
		name    = fmt.Sprintf("%s/%s",
			AppName,
			dom)
		logfile *os.File
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %w", err)
	}

	if logfile, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %w",
			LogPath,
			err)
	}

	var writer = io.MultiWriter(os.Stdout, logfile)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: logutils.LogLevel(MinLogLevel),
		Writer:   writer,
	}

	var logger = log.New(filter, name+" ", log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// InitApp performs some basic preparations for the application to run.
// It is safe to call multiple times.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		return fmt.Errorf("Error checking if BaseDir %s exists: %w",
			BaseDir,
			err)
	} else if !exists {
		if err = os.MkdirAll(BaseDir, 0755); err != nil {
			return fmt.Errorf("Error creating BaseDir %s: %w",
				BaseDir,
				err)
		}
	}

	return nil
} // func InitApp() error

// GetUUID returns a randomized UUID as a string.
func GetUUID() string {
	return uuid.New()
} // func GetUUID() string
