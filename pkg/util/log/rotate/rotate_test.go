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

package rotate

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHook(t *testing.T) {
	_, err := NewHook(Config{Formatter: &logrus.TextFormatter{}})
	require.Error(t, err)
	_, err = NewHook(Config{Filename: "wincall.log"})
	require.Error(t, err)

	hook, err := NewHook(Config{Filename: filepath.Join(t.TempDir(), "wincall.log"), Formatter: &logrus.TextFormatter{}, Level: logrus.WarnLevel})
	require.NoError(t, err)
	defer hook.Close()
	assert.Equal(t, []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}, hook.Levels())
}

func TestFire(t *testing.T) {
	var buf bytes.Buffer
	hook := newFile(Config{Formatter: &logrus.JSONFormatter{}, Level: logrus.InfoLevel, Redact: []string{"Password"}}, &buf)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	logger.AddHook(hook)
	logger.WithFields(logrus.Fields{"bind-dn": "CN=svc,DC=corp", "password": "hunter2"}).Info("binding")

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "binding", out["msg"])
	assert.Equal(t, "CN=svc,DC=corp", out["bind-dn"])
	assert.Equal(t, mask, out["password"])
	assert.Contains(t, out["source"], "rotate/rotate_test.go:")
	assert.NotContains(t, buf.String(), "hunter2")
}
