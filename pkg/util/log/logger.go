/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rabbitstack/wincall/pkg/util/log/rotate"
	fs "github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// loggerErrors counts logger setup errors
var loggerErrors = expvar.NewMap("logger.errors")

// DefaultPath returns the logs directory used when no explicit path is configured.
// It resolves to the logs directory next to the wincall binary.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(os.Getenv("PROGRAMFILES"), "wincall", "logs")
	}
	return filepath.Join(filepath.Dir(exe), "..", "logs")
}

// InitFromConfig initializes a Logrus instance from config options. The
// filename is joined with the logs directory to form the log file path.
func InitFromConfig(c Config, filename string) error {
	path := DefaultPath()
	if c.Path != "" {
		path = c.Path
	}
	if path == "" || filename == "" {
		return errors.New("got an empty logs directory path or file name")
	}
	if _, err := os.Stat(path); err != nil {
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create the %s logs directory: %v", path, err)
		}
	}

	file := filepath.Join(path, filename)

	formatter := newFormatter(c.Formatter)
	logrus.SetFormatter(formatter)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	// disable writing to stdout
	if !c.LogStdout {
		logrus.SetOutput(io.Discard)
	} else {
		logrus.SetOutput(os.Stdout)
	}

	rhook, err := rotate.NewHook(rotate.Config{
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		MaxSize:    c.MaxSize,
		Level:      level,
		Compress:   c.Compress,
		Formatter:  formatter,
		Filename:   file,
		Redact:     c.Redact,
	})
	if err != nil {
		loggerErrors.Add(err.Error(), 1)
		// failed to initialize log rotate, so we fallback on simple log hook
		var pathMap fs.PathMap = make(map[logrus.Level]string)
		for _, lvl := range logrus.AllLevels {
			pathMap[lvl] = file
		}
		logrus.AddHook(fs.NewHook(pathMap, formatter))
		logrus.Warnf("unable to initialize rotate file hook: %v", err)
		return nil
	}
	logrus.AddHook(rhook)

	return nil
}

func newFormatter(name string) logrus.Formatter {
	switch name {
	case "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	default:
		return &logrus.JSONFormatter{}
	}
}
