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
	"encoding/binary"
	"testing"
	"unicode/utf16"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf16z(s string) []byte {
	u := append(utf16.Encode([]rune(s)), 0)
	b := make([]byte, len(u)*2)
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[i*2:], c)
	}
	return b
}

func TestVarStringAt(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf[8:], utf16z("Modem"))
	copy(buf[40:], []byte("caf\xe9\x00"))

	var tests = []struct {
		name   string
		offset uint32
		size   uint32
		format uint32
		want   string
	}{
		{"unicode", 8, 12, STRINGFORMAT_UNICODE, "Modem"},
		{"unicode odd size", 8, 11, STRINGFORMAT_UNICODE, "Modem"},
		{"ascii windows-1252", 40, 5, STRINGFORMAT_ASCII, "café"},
		{"binary", 40, 3, STRINGFORMAT_BINARY, "caf"},
		{"zero size", 8, 0, STRINGFORMAT_UNICODE, ""},
		{"offset out of range", 70, 4, STRINGFORMAT_UNICODE, ""},
		{"size out of range", 60, 10, STRINGFORMAT_ASCII, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VarStringAt(buf, tt.offset, tt.size, tt.format))
		})
	}
}

func TestMultiStringAt(t *testing.T) {
	var b []byte
	b = append(b, utf16z("tapi/line")...)
	b = append(b, utf16z("wave/in")...)
	b = append(b, 0, 0)
	assert.Equal(t, []string{"tapi/line", "wave/in"}, MultiStringAt(b, 0, uint32(len(b)), STRINGFORMAT_UNICODE))
}

func TestQueryVarGrows(t *testing.T) {
	name := utf16z("Line 1")
	need := uint32(unsafe.Sizeof(VarString{})) + uint32(len(name))
	calls := 0

	b, err := QueryVar[VarString](32, func(s *VarString) int32 {
		calls++
		s.NeededSize = need
		if s.TotalSize < need {
			s.UsedSize = uint32(unsafe.Sizeof(*s))
			return 0
		}
		s.UsedSize = need
		s.StringFormat = STRINGFORMAT_UNICODE
		s.StringOffset = uint32(unsafe.Sizeof(*s))
		s.StringSize = uint32(len(name))
		dst := unsafe.Slice((*byte)(unsafe.Pointer(s)), need)
		copy(dst[s.StringOffset:], name)
		return 0
	}, lineErr)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, need, b.TotalSize())
	v := b.Ptr()
	assert.Equal(t, "Line 1", b.String(v.StringOffset, v.StringSize, v.StringFormat))
}

func TestQueryVarStructureTooSmall(t *testing.T) {
	calls := 0
	b, err := QueryVar[LineDevCaps](16, func(caps *LineDevCaps) int32 {
		calls++
		if calls == 1 {
			return LINEERR_STRUCTURETOOSMALL.Code()
		}
		caps.NeededSize = caps.TotalSize
		caps.UsedSize = caps.TotalSize
		return 0
	}, lineErr)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, b.TotalSize() >= uint32(unsafe.Sizeof(LineDevCaps{})))
}

func TestQueryVarExhausted(t *testing.T) {
	_, err := QueryVar[VarString](0, func(s *VarString) int32 {
		s.NeededSize = s.TotalSize + 1
		return 0
	}, lineErr)
	assert.Equal(t, ErrVarBufferExhausted, err)
}

func TestQueryVarError(t *testing.T) {
	_, err := QueryVar[PhoneStatus](0, func(*PhoneStatus) int32 {
		return PHONEERR_INVALPHONEHANDLE.Code()
	}, phoneErr)
	assert.Equal(t, PHONEERR_INVALPHONEHANDLE, err)
}
