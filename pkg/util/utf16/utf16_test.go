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

package utf16

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for i := 0; i < 20; i++ {
		buf := genbuf(1 << i)
		require.Equal(t, string(utf16.Decode(buf)), Decode(buf), "1<<%d", i)
	}
	require.Equal(t, "CN=Jürgen,OU=Vertrieb", Decode(utf16.Encode([]rune("CN=Jürgen,OU=Vertrieb"))))
}

func TestDecodeSurrogates(t *testing.T) {
	var tests = []struct {
		in   []uint16
		want string
	}{
		{[]uint16{0xd83d, 0xde00}, "\U0001F600"},
		{[]uint16{0xd83d}, "\uFFFD"},
		{[]uint16{0xde00, 'a'}, "\uFFFDa"},
		{[]uint16{'a', 0xd83d, 'b'}, "a\uFFFDb"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.in))
		assert.Equal(t, string(utf16.Decode(tt.in)), Decode(tt.in))
	}
}

func TestDecodePtr(t *testing.T) {
	buf := utf16.Encode([]rune("DC01\x00backup"))
	assert.Equal(t, "DC01\x00backup", DecodePtr(&buf[0], len(buf)))
	assert.Equal(t, "DC01", DecodePtr(&buf[0], 4))
	assert.Equal(t, "", DecodePtr(nil, 4))
	assert.Equal(t, "", DecodePtr(&buf[0], 0))
}

func BenchmarkDecode(b *testing.B) {
	b.ReportAllocs()
	b.StopTimer()
	buf := genbuf(b.N)
	b.StartTimer()
	_ = Decode(buf)
}

func genbuf(n int) []uint16 {
	r := rand.New(rand.NewSource(int64(n)))
	buf := make([]rune, n)
	for i := 0; i < n; i++ {
		// mostly ASCII, like directory attribute values
		if r.Intn(100) == 0 {
			buf[i] = rune(r.Intn(0x10ffff + 1))
		} else {
			buf[i] = rune(r.Intn(1 << 7))
		}
	}
	return utf16.Encode(buf)
}
