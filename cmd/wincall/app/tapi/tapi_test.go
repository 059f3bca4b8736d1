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

package tapi

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rabbitstack/wincall/internal/telephony"
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDevice(t *testing.T) {
	id, err := parseDevice("3")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), id)

	_, err = parseDevice("-1")
	require.Error(t, err)
	_, err = parseDevice("line0")
	require.Error(t, err)
}

func TestParseErrorCode(t *testing.T) {
	var tests = []struct {
		in   string
		want error
	}{
		{"0x80000002", tapi.LINEERR_BADDEVICEID},
		{"0x90000002", tapi.PHONEERR_BADDEVICEID},
		{"-2", tapi.RequestErr(-2)},
		{"2147483650", tapi.LINEERR_BADDEVICEID},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, err := parseErrorCode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tapi.ParseError(code))
		})
	}

	_, err := parseErrorCode("LINEERR")
	require.Error(t, err)
}

func TestErrorRow(t *testing.T) {
	assert.Equal(t, table.Row{"0x80000002", "line", "LINEERR_BADDEVICEID"}, errorRow(tapi.LINEERR_BADDEVICEID))
	assert.Equal(t, "phone", errorRow(tapi.PHONEERR_BADDEVICEID)[1])
	assert.Equal(t, "request", errorRow(tapi.RequestErr(-2))[1])
}

func TestTranslateOptions(t *testing.T) {
	defer func() { forceLocal, forceLongDistance, cancelCallWaiting = false, false, false }()

	assert.Equal(t, uint32(0), translateOptions())
	forceLocal, cancelCallWaiting = true, true
	assert.Equal(t, tapi.LINETRANSLATEOPTION_FORCELOCAL|tapi.LINETRANSLATEOPTION_CANCELCALLWAITING, translateOptions())
}

func TestFormatTransition(t *testing.T) {
	color.NoColor = true
	at := time.Date(2022, 1, 1, 10, 30, 0, 0, time.Local)

	s := formatTransition(telephony.Transition{Call: 0x10, To: telephony.Offering, New: true, At: at, CallerID: "+1555"})
	assert.Contains(t, s, "10:30:00.000 call 0x00000010")
	assert.Contains(t, s, "[+1555 => ?]")

	s = formatTransition(telephony.Transition{
		Call: 0x10,
		From: telephony.Idle,
		To:   telephony.Connected,
		Err:  telephony.IllegalTransitionError{},
		At:   at,
	})
	assert.Contains(t, s, "(illegal)")
}
