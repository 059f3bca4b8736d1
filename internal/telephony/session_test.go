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

package telephony

import (
	"testing"
	"time"

	"github.com/rabbitstack/wincall/pkg/config"
	errs "github.com/rabbitstack/wincall/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.TAPIConfig {
	return config.TAPIConfig{
		AppName:        "wincall-test",
		APIVersionLow:  tapi.TAPIVersion1_4,
		APIVersionHigh: tapi.TAPIVersion3_1,
		MessageTimeout: 10 * time.Millisecond,
		PollRate:       1000,
		PollBurst:      100,
	}
}

func TestNewSession(t *testing.T) {
	f := newFakeLine(lineDevice{version: tapi.TAPIVersion2_2, name: "Modem"})
	s, err := newSession(f, testConfig())
	require.NoError(t, err)
	assert.Equal(t, uint32(1), s.NumDevices())
	assert.NotZero(t, s.Event())
	require.NoError(t, s.Close())
	assert.True(t, f.isShutdown)
}

func TestDevices(t *testing.T) {
	f := newFakeLine(
		lineDevice{
			version:   tapi.TAPIVersion2_2,
			name:      "Standard Modem",
			provider:  "Unimodem 5",
			addresses: []string{"+1 (425) 555-0100"},
			media:     tapi.LINEMEDIAMODE_INTERACTIVEVOICE | tapi.LINEMEDIAMODE_DATAMODEM,
		},
		lineDevice{version: tapi.TAPIVersion1_3, name: "Legacy"},
		lineDevice{
			version:   tapi.TAPIVersion3_0,
			name:      "IP Line",
			provider:  "H.323",
			addresses: []string{"100", "101"},
			media:     tapi.LINEMEDIAMODE_INTERACTIVEVOICE,
		},
	)
	s, err := newSession(f, testConfig())
	require.NoError(t, err)

	devices, err := s.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)

	modem := devices[0]
	assert.Equal(t, uint32(0), modem.ID)
	assert.Equal(t, tapi.TAPIVersion2_2, modem.APIVersion)
	assert.Equal(t, "Standard Modem", modem.Name)
	assert.Equal(t, "Unimodem 5", modem.Provider)
	assert.Equal(t, uint32(0x1000), modem.PermanentID)
	assert.Equal(t, []string{"interactive-voice", "data-modem"}, modem.MediaModes)
	assert.Equal(t, []string{"voice"}, modem.BearerModes)
	assert.Equal(t, []string{"+1 (425) 555-0100"}, modem.Addresses)
	assert.Equal(t, []string{"tapi/line", "wave/in"}, modem.DeviceClasses)
	assert.Empty(t, modem.GUID)

	ip := devices[1]
	assert.Equal(t, uint32(2), ip.ID)
	assert.Equal(t, []string{"100", "101"}, ip.Addresses)
}

func TestDeviceNotFound(t *testing.T) {
	s, err := newSession(newFakeLine(), testConfig())
	require.NoError(t, err)
	_, err = s.Device(3)
	require.Error(t, err)
	assert.True(t, errs.IsDeviceNotFound(err))
}

func TestNegotiatedVersionCached(t *testing.T) {
	f := newFakeLine(lineDevice{version: tapi.TAPIVersion2_0, name: "Modem"})
	s, err := newSession(f, testConfig())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := s.Device(0)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, f.negotiations)
}

func TestIncompatibleVersion(t *testing.T) {
	f := newFakeLine(lineDevice{version: tapi.TAPIVersion1_3})
	s, err := newSession(f, testConfig())
	require.NoError(t, err)
	_, err = s.Device(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lineNegotiateAPIVersion(0)")
	assert.Contains(t, err.Error(), "LINEERR_INCOMPATIBLEAPIVERSION")
}
