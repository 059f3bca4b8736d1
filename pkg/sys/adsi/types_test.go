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

package adsi

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestADsValueAccessors(t *testing.T) {
	n := NewIntegerValue(514)
	assert.Equal(t, uint32(514), n.Int())
	assert.Equal(t, uint32(514), n.Interface())
	assert.Equal(t, "514", n.String())

	b := NewBooleanValue(true)
	assert.True(t, b.Bool())
	assert.Equal(t, true, b.Interface())

	li := NewLargeIntegerValue(-9223372036854775807)
	assert.Equal(t, int64(-9223372036854775807), li.LargeInteger())

	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	o := NewOctetStringValue(payload)
	assert.Equal(t, payload, o.OctetString())
	assert.Equal(t, "DEADBEEF", o.String())

	s, err := windows.UTF16PtrFromString("CN=Administrator,CN=Users,DC=corp,DC=local")
	require.NoError(t, err)
	dn := NewStringValue(ADSTYPE_DN_STRING, s)
	assert.True(t, dn.IsString())
	assert.Equal(t, "CN=Administrator,CN=Users,DC=corp,DC=local", dn.Str())
	assert.Equal(t, "", n.Str())
}

func TestADsValueTime(t *testing.T) {
	v := ADsValue{Type: ADSTYPE_UTC_TIME}
	st := (*windows.Systemtime)(v.ptr())
	st.Year, st.Month, st.Day = 2024, 2, 29
	st.Hour, st.Minute, st.Second, st.Milliseconds = 13, 45, 7, 250
	assert.Equal(t, time.Date(2024, 2, 29, 13, 45, 7, 250*int(time.Millisecond), time.UTC), v.Time())
	assert.Equal(t, "2024-02-29T13:45:07Z", v.String())
}

func TestADsValueInvalid(t *testing.T) {
	v := ADsValue{Type: ADSTYPE_INVALID}
	assert.Nil(t, v.Interface())
	assert.Contains(t, v.String(), "<")
}

func TestFileTimeToTime(t *testing.T) {
	assert.True(t, FileTimeToTime(0).IsZero())
	assert.True(t, FileTimeToTime(0x7FFFFFFFFFFFFFFF).IsZero())
	// 2000-01-01T00:00:00Z
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), FileTimeToTime(125911584000000000))
}

func TestGUIDFromOctets(t *testing.T) {
	b := []byte{0xD0, 0x56, 0x82, 0xFD, 0x15, 0xFD, 0xCE, 0x11, 0xAB, 0xC4, 0x02, 0x60, 0x8C, 0x9E, 0x75, 0x53}
	g, ok := GUIDFromOctets(b)
	require.True(t, ok)
	assert.Equal(t, IID_IADs, g)

	_, ok = GUIDFromOctets(b[:8])
	assert.False(t, ok)
}

func TestUserFlags(t *testing.T) {
	var tests = []struct {
		uac  uint32
		want []string
	}{
		{0x200, []string{"NORMAL_ACCOUNT"}},
		{0x202, []string{"ACCOUNTDISABLE", "NORMAL_ACCOUNT"}},
		{0x10200, []string{"NORMAL_ACCOUNT", "DONT_EXPIRE_PASSWD"}},
		{0x1000, []string{"WORKSTATION_TRUST_ACCOUNT"}},
		{0x4, []string{"0x4"}},
		{0, []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserFlags(tt.uac))
	}
}

func TestParseUserFlag(t *testing.T) {
	f, ok := ParseUserFlag("ADS_UF_LOCKOUT")
	require.True(t, ok)
	assert.Equal(t, ADS_UF_LOCKOUT, f)

	f, ok = ParseUserFlag("SMARTCARD_REQUIRED")
	require.True(t, ok)
	assert.Equal(t, ADS_UF_SMARTCARD_REQUIRED, f)

	_, ok = ParseUserFlag("NOPE")
	assert.False(t, ok)
	assert.Len(t, UserFlagNames(), 22)
}

func TestGroupTypes(t *testing.T) {
	assert.Equal(t, []string{"GLOBAL", "SECURITY"}, GroupTypes(0x80000002))
	assert.Equal(t, []string{"UNIVERSAL", "DISTRIBUTION"}, GroupTypes(0x8))
}

func TestADsMem(t *testing.T) {
	p := AllocADsMem(16)
	require.NotNil(t, p)
	b := unsafe.Slice((*byte)(p), 16)
	assert.Equal(t, make([]byte, 16), b)
	b[0] = 0x7f

	p = ReallocADsMem(p, 16, 64)
	require.NotNil(t, p)
	assert.Equal(t, byte(0x7f), *(*byte)(p))
	assert.True(t, FreeADsMem(p))
}
