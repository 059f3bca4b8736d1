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

// Package utf16 decodes UTF-16 buffers handed out by Win32 and COM APIs.
package utf16

import (
	"unicode/utf8"
	"unsafe"
)

const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

const replacement = rune(0xfffd)

// Decode converts UTF-16 code units to a UTF-8 string in a single
// allocation. Unpaired surrogates decode to U+FFFD.
func Decode(p []uint16) string {
	s := make([]byte, 0, 2*len(p))
	for i := 0; i < len(p); i++ {
		r := rune(p[i])
		switch {
		case r < surr1, r >= surr3:
		case r < surr2 && i+1 < len(p) && p[i+1] >= surr2 && p[i+1] < surr3:
			r = surrSelf + (r-surr1)<<10 + (rune(p[i+1]) - surr2)
			i++
		default:
			r = replacement
		}
		s = utf8.AppendRune(s, r)
	}
	return string(s)
}

// DecodePtr decodes n code units starting at p. Length-prefixed strings
// such as BSTR may carry embedded NULs, so the buffer is not scanned for a
// terminator.
func DecodePtr(p *uint16, n int) string {
	if p == nil || n <= 0 {
		return ""
	}
	return Decode(unsafe.Slice(p, n))
}
