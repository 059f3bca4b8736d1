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

package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var tests = []struct {
		v       string
		want    string
		wantErr bool
	}{
		{"", "dev", false},
		{"0.0.0", "dev", false},
		{"1.4.2", "1.4.2", false},
		{"2.0.0-rc1", "2.0.0-rc1", false},
		{"not-a-version", "dev", true},
	}

	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			info, err := New(tt.v, "c0ffee", "2022-05-01")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.String())
			assert.Equal(t, "c0ffee", info.Commit)
		})
	}
}

func TestRender(t *testing.T) {
	info, err := New("1.4.2-beta", "c0ffee", "2022-05-01")
	require.NoError(t, err)

	var b bytes.Buffer
	info.Render(&b, [2]string{"TAPI", "2.2-3.1"})
	out := b.String()

	assert.Contains(t, out, "1.4.2-beta")
	assert.Contains(t, out, "Pre-release")
	assert.Contains(t, out, "c0ffee")
	assert.Contains(t, out, "TAPI")
	assert.Contains(t, out, "2.2-3.1")
}

func TestGet(t *testing.T) {
	defer Set("")

	Set("")
	assert.True(t, IsDev())
	assert.Equal(t, "dev", Get())
	assert.Equal(t, "wincall/dev", ProductToken())

	Set("1.0.3")
	assert.False(t, IsDev())
	assert.Equal(t, "wincall/1.0.3", ProductToken())
}
