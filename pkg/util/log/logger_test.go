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
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFromConfig(t *testing.T) {
	require.Error(t, InitFromConfig(Config{}, ""))
	require.Error(t, InitFromConfig(Config{Path: t.TempDir(), Level: "loud"}, "wincall.log"))

	dir := t.TempDir()
	require.NoError(t, InitFromConfig(Config{Path: dir, Level: "info", Formatter: "text", MaxSize: 1}, "wincall.log"))
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	logrus.Info("wincall initialized")

	_, err := os.Stat(filepath.Join(dir, "wincall.log"))
	require.NoError(t, err)
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, newFormatter("json"))
	assert.IsType(t, &logrus.JSONFormatter{}, newFormatter(""))
	assert.IsType(t, &logrus.TextFormatter{}, newFormatter("text"))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "logs", filepath.Base(DefaultPath()))
}
