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

// Package bootstrap wires the configuration, logging and signal handling
// shared by every wincall command.
package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/rabbitstack/wincall/pkg/config"
	"github.com/rabbitstack/wincall/pkg/util/log"
	"github.com/rabbitstack/wincall/pkg/util/version"
	"github.com/sirupsen/logrus"
)

// logFile is the name of the log file created inside the logs directory
const logFile = "wincall.log"

// InitConfigAndLogger initializes the configuration and sets up the logger.
// A config file that can't be read doesn't stop the command. Flags,
// environment variables and defaults still apply. A config file that is
// read but fails validation does.
func InitConfigAndLogger(cfg *config.Config) error {
	loadErr := cfg.TryLoadFile(cfg.File())
	if err := cfg.Init(); err != nil {
		return err
	}
	if loadErr == nil {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := log.InitFromConfig(cfg.Log, logFile); err != nil {
		return err
	}

	switch {
	case loadErr == nil:
		logrus.Debugf("loaded configuration from %s", cfg.File())
	case errors.Is(loadErr, fs.ErrNotExist):
		logrus.Debugf("%s doesn't exist. Using default settings", cfg.File())
	default:
		logrus.Warnf("unable to load configuration "+
			"from %s file: %v. Falling back to default "+
			"settings...", cfg.File(), loadErr)
	}
	logrus.Debugf("%s running with %s", version.ProductToken(), cfg.Print())

	return nil
}
