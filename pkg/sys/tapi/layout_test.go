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
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestStructSizes(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layouts are asserted against the amd64 ABI")
	}
	var tests = []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"LINEDIALPARAMS", unsafe.Sizeof(LineDialParams{}), 16},
		{"LINEEXTENSIONID", unsafe.Sizeof(LineExtensionID{}), 16},
		{"LINEINITIALIZEEXPARAMS", unsafe.Sizeof(LineInitializeExParams{}), 32},
		{"PHONEINITIALIZEEXPARAMS", unsafe.Sizeof(PhoneInitializeExParams{}), 32},
		{"LINEMESSAGE", unsafe.Sizeof(LineMessage{}), 40},
		{"PHONEMESSAGE", unsafe.Sizeof(PhoneMessage{}), 40},
		{"VARSTRING", unsafe.Sizeof(VarString{}), 24},
		{"LINEDEVCAPS", unsafe.Sizeof(LineDevCaps{}), 292},
		{"LINEADDRESSCAPS", unsafe.Sizeof(LineAddressCaps{}), 228},
		{"LINECALLINFO", unsafe.Sizeof(LineCallInfo{}), 344},
		{"LINECALLSTATUS", unsafe.Sizeof(LineCallStatus{}), 56},
		{"LINECALLPARAMS", unsafe.Sizeof(LineCallParams{}), 188},
		{"LINEDEVSTATUS", unsafe.Sizeof(LineDevStatus{}), 88},
		{"LINEADDRESSSTATUS", unsafe.Sizeof(LineAddressStatus{}), 64},
		{"LINETRANSLATECAPS", unsafe.Sizeof(LineTranslateCaps{}), 44},
		{"LINELOCATIONENTRY", unsafe.Sizeof(LineLocationEntry{}), 68},
		{"LINECARDENTRY", unsafe.Sizeof(LineCardEntry{}), 44},
		{"LINETRANSLATEOUTPUT", unsafe.Sizeof(LineTranslateOutput{}), 40},
		{"PHONECAPS", unsafe.Sizeof(PhoneCaps{}), 196},
		{"PHONESTATUS", unsafe.Sizeof(PhoneStatus{}), 104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size)
		})
	}
}

func TestFieldOffsets(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layouts are asserted against the amd64 ABI")
	}
	var caps LineDevCaps
	assert.Equal(t, uintptr(156), unsafe.Offsetof(caps.MinDialParams))
	assert.Equal(t, uintptr(252), unsafe.Offsetof(caps.PermanentLineGUID))
	assert.Equal(t, uintptr(272), unsafe.Offsetof(caps.ProtocolGUID))

	var params LineInitializeExParams
	assert.Equal(t, uintptr(16), unsafe.Offsetof(params.Event))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(params.CompletionKey))

	var msg LineMessage
	assert.Equal(t, uintptr(8), unsafe.Offsetof(msg.CallbackInstance))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(msg.Param3))

	var status LineCallStatus
	assert.Equal(t, uintptr(40), unsafe.Offsetof(status.StateEntryTime))

	var info LineCallInfo
	assert.Equal(t, uintptr(64), unsafe.Offsetof(info.DialParams))
	assert.Equal(t, uintptr(80), unsafe.Offsetof(info.Origin))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, uint32(0x00030001), TAPICurrentVersion)
	assert.Equal(t, uint32(2), LINE_CALLSTATE)
	assert.Equal(t, uint32(12), LINE_REPLY)
	assert.Equal(t, uint32(18), PHONE_STATE)
	assert.Equal(t, uint32(34), LINE_DEVSPECIFICEX)
	assert.Equal(t, uint32(0x01000000), LINEDEVSTATE_REMOVED)
	assert.Equal(t, uint32(0x00800000), PHONESTATE_REMOVED)
	assert.Equal(t, uint32(0x00080000), LINEDISCONNECTMODE_CANCELLED)
	assert.Equal(t, "LINE_APPNEWCALLHUB", MessageName(LINE_APPNEWCALLHUB))
	assert.Equal(t, "UNKNOWN", MessageName(99))
}

func TestFlagNames(t *testing.T) {
	modes := LINEMEDIAMODE_INTERACTIVEVOICE | LINEMEDIAMODE_DATAMODEM | 0x80000000
	assert.Equal(t, []string{"interactive-voice", "data-modem"}, FlagNames(modes, MediaModeNames))
	assert.Nil(t, FlagNames(0, BearerModeNames))
}
