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
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultVarSize is the initial size of a variable structure buffer.
const DefaultVarSize = 1024

// maxVarAttempts bounds how many times a buffer is regrown for a single query.
const maxVarAttempts = 4

// ErrVarBufferExhausted is returned when the provider keeps asking for more room.
var ErrVarBufferExhausted = errors.New("variable structure still too small after regrowing")

// VarBuffer holds a variable-sized TAPI structure of type T followed by the
// trailing data its offset/size pairs point into.
type VarBuffer[T any] struct {
	buf []byte
}

// NewVarBuffer allocates a buffer of at least the fixed size of T and stamps TotalSize.
func NewVarBuffer[T any](size uint32) *VarBuffer[T] {
	var t T
	if fixed := uint32(unsafe.Sizeof(t)); size < fixed {
		size = fixed
	}
	b := &VarBuffer[T]{buf: make([]byte, size)}
	b.header().TotalSize = size
	return b
}

func (b *VarBuffer[T]) header() *VarHeader {
	return (*VarHeader)(unsafe.Pointer(&b.buf[0]))
}

// Ptr returns the structure view over the buffer.
func (b *VarBuffer[T]) Ptr() *T {
	return (*T)(unsafe.Pointer(&b.buf[0]))
}

// TotalSize, NeededSize and UsedSize expose the leading size triple.
func (b *VarBuffer[T]) TotalSize() uint32  { return b.header().TotalSize }
func (b *VarBuffer[T]) NeededSize() uint32 { return b.header().NeededSize }
func (b *VarBuffer[T]) UsedSize() uint32   { return b.header().UsedSize }

// Bytes returns the portion of the buffer the service provider filled in.
func (b *VarBuffer[T]) Bytes() []byte {
	used := b.header().UsedSize
	if used > uint32(len(b.buf)) {
		used = uint32(len(b.buf))
	}
	return b.buf[:used]
}

// String decodes the string stored at the given offset/size pair.
func (b *VarBuffer[T]) String(offset, size, format uint32) string {
	return VarStringAt(b.Bytes(), offset, size, format)
}

// Data returns the raw bytes stored at the given offset/size pair.
func (b *VarBuffer[T]) Data(offset, size uint32) []byte {
	return varSlice(b.Bytes(), offset, size)
}

// fits reports whether the provider could store everything it wanted to.
func (b *VarBuffer[T]) fits() bool {
	h := b.header()
	return h.NeededSize <= h.TotalSize
}

// QueryVar calls fn with a buffer of the initial size and regrows the buffer
// to the size the service provider reports in NeededSize until the structure
// fits. fn returns the raw LONG of the TAPI call, conv maps it to an error.
func QueryVar[T any](initial uint32, fn func(*T) int32, conv func(int32) error) (*VarBuffer[T], error) {
	if initial == 0 {
		initial = DefaultVarSize
	}
	b := NewVarBuffer[T](initial)
	for i := 0; i < maxVarAttempts; i++ {
		err := conv(fn(b.Ptr()))
		switch {
		case err == nil && b.fits():
			return b, nil
		case err == nil:
			b = NewVarBuffer[T](b.NeededSize())
		case isStructureTooSmall(err):
			// the fixed part didn't fit so NeededSize may not be set
			size := b.NeededSize()
			if size <= b.TotalSize() {
				size = b.TotalSize() * 2
			}
			b = NewVarBuffer[T](size)
		default:
			return nil, err
		}
	}
	return nil, ErrVarBufferExhausted
}

func isStructureTooSmall(err error) bool {
	return err == LINEERR_STRUCTURETOOSMALL || err == PHONEERR_STRUCTURETOOSMALL
}

func varSlice(buf []byte, offset, size uint32) []byte {
	if size == 0 || offset >= uint32(len(buf)) {
		return nil
	}
	end := uint64(offset) + uint64(size)
	if end > uint64(len(buf)) {
		return nil
	}
	return buf[offset:end]
}

// VarStringAt decodes the string located at offset with size bytes inside the
// filled part of a variable structure. Unicode strings decode as UTF-16LE and
// ASCII/DBCS strings as Windows-1252. Trailing NULs are stripped. Binary
// payloads are returned verbatim. Ranges outside buf yield an empty string.
func VarStringAt(buf []byte, offset, size, format uint32) string {
	b := varSlice(buf, offset, size)
	if len(b) == 0 {
		return ""
	}
	switch format {
	case STRINGFORMAT_UNICODE:
		if len(b)%2 != 0 {
			b = b[:len(b)-1]
		}
		for len(b) >= 2 && binary.LittleEndian.Uint16(b[len(b)-2:]) == 0 {
			b = b[:len(b)-2]
		}
		s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return ""
		}
		return string(s)
	case STRINGFORMAT_ASCII, STRINGFORMAT_DBCS:
		b = bytes.TrimRight(b, "\x00")
		s, err := charmap.Windows1252.NewDecoder().Bytes(b)
		if err != nil {
			return ""
		}
		return string(s)
	default:
		return string(b)
	}
}

// MultiStringAt splits a NUL-separated list such as LineDevCaps device classes.
func MultiStringAt(buf []byte, offset, size, format uint32) []string {
	s := VarStringAt(buf, offset, size, format)
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range bytes.Split([]byte(s), []byte{0}) {
		if len(part) > 0 {
			out = append(out, string(part))
		}
	}
	return out
}
