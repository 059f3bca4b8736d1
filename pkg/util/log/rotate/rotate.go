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

// Package rotate provides a logrus hook writing entries to a size-rotated file.
package rotate

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// mask replaces the values of redacted fields.
const mask = "********"

// Config is the configuration for the rotate file hook.
type Config struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      logrus.Level
	Formatter  logrus.Formatter
	// Redact lists the entry fields whose values never reach the file.
	// Field names are matched case-insensitively.
	Redact []string
}

// File is a logrus hook that writes formatted entries into a size-rotated
// log file. Each entry is annotated with the source location of the caller.
type File struct {
	config Config
	redact map[string]struct{}

	mu sync.Mutex
	w  io.Writer
}

// NewHook builds a new rotate file hook.
func NewHook(config Config) (*File, error) {
	if config.Filename == "" {
		return nil, errors.New("rotate: empty log file name")
	}
	if config.Formatter == nil {
		return nil, errors.New("rotate: nil formatter")
	}
	w := &lumberjack.Logger{
		Filename:   config.Filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
	return newFile(config, w), nil
}

func newFile(config Config, w io.Writer) *File {
	hook := &File{config: config, w: w, redact: make(map[string]struct{}, len(config.Redact))}
	for _, field := range config.Redact {
		hook.redact[strings.ToLower(field)] = struct{}{}
	}
	return hook
}

// Levels determines log levels that for which the logs are written.
func (hook *File) Levels() []logrus.Level {
	return logrus.AllLevels[:hook.config.Level+1]
}

// Fire is called by logrus when it is about to write the log entry.
func (hook *File) Fire(entry *logrus.Entry) error {
	data := make(logrus.Fields, len(entry.Data)+1)
	for k, v := range entry.Data {
		if _, ok := hook.redact[strings.ToLower(k)]; ok {
			v = mask
		}
		data[k] = v
	}
	if src := caller(); src != "" {
		data["source"] = src
	}
	e := &logrus.Entry{
		Logger:  entry.Logger,
		Data:    data,
		Time:    entry.Time,
		Level:   entry.Level,
		Message: entry.Message,
		Context: entry.Context,
	}
	b, err := hook.config.Formatter.Format(e)
	if err != nil {
		return err
	}
	hook.mu.Lock()
	defer hook.mu.Unlock()
	_, err = hook.w.Write(b)
	return err
}

// Close closes the underlying log file.
func (hook *File) Close() error {
	if c, ok := hook.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// caller returns the first frame outside of logrus as a dir/file.go:line pair.
func caller() string {
	pcs := make([]uintptr, 25)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") {
			return fmt.Sprintf("%s/%s:%d", path.Base(path.Dir(frame.File)), path.Base(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}
