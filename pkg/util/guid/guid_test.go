//go:build windows

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

package guid

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in   string
		want windows.GUID
	}{
		{"{FD8256D0-FD15-11CE-ABC4-02608C9E7553}", windows.GUID{Data1: 0xFD8256D0, Data2: 0xFD15, Data3: 0x11CE, Data4: [8]byte{0xAB, 0xC4, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}}},
		{"109ba8ec-92f0-11d0-a790-00c04fd8d5a8", windows.GUID{Data1: 0x109BA8EC, Data2: 0x92F0, Data3: 0x11D0, Data4: [8]byte{0xA7, 0x90, 0x00, 0xC0, 0x4F, 0xD8, 0xD5, 0xA8}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
		})
	}

	_, err := Parse("not-a-guid")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	u := uuid.New()
	assert.Equal(t, u, ToUUID(FromUUID(u)))
	g := FromUUID(u)
	assert.Equal(t, "{"+strings.ToUpper(u.String())+"}", g.String())
	assert.Equal(t, u.String(), String(g))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(windows.GUID{}))
	assert.False(t, IsZero(windows.GUID{Data1: 1}))
}
