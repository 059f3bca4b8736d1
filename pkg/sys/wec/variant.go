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

package wec

import (
	"time"
	"unsafe"

	"github.com/rabbitstack/wincall/pkg/util/filetime"
	"golang.org/x/sys/windows"
)

func (v *EcVariant) ptr() unsafe.Pointer { return unsafe.Pointer(&v.val) }

// IsArray reports whether the variant carries Count elements.
func (v *EcVariant) IsArray() bool { return v.Type&EcVariantTypeArray != 0 }

// Kind returns the scalar type of the variant with the array bit cleared.
func (v *EcVariant) Kind() EcVariantType { return v.Type & EcVariantTypeMask }

// Bool returns the EcVarTypeBoolean value.
func (v *EcVariant) Bool() bool { return *(*int32)(v.ptr()) != 0 }

// UInt32 returns the EcVarTypeUInt32 value.
func (v *EcVariant) UInt32() uint32 { return *(*uint32)(v.ptr()) }

// Time returns the EcVarTypeDateTime value. A zero FILETIME yields the zero time.
func (v *EcVariant) Time() time.Time {
	return filetime.ToTime(v.val)
}

// Str returns the EcVarTypeString value.
func (v *EcVariant) Str() string {
	return windows.UTF16PtrToString(*(**uint16)(v.ptr()))
}

// Handle returns the EcVarObjectArrayPropertyHandle value.
func (v *EcVariant) Handle() EcObjectArrayPropertyHandle {
	return EcObjectArrayPropertyHandle(v.val)
}

// Value decodes the variant into bool, uint32, time.Time, string, []bool,
// []int32, []string or EcObjectArrayPropertyHandle. Null variants and
// unknown types decode to nil.
func (v *EcVariant) Value() interface{} {
	if v.IsArray() {
		return v.array()
	}
	switch v.Kind() {
	case EcVarTypeBoolean:
		return v.Bool()
	case EcVarTypeUInt32:
		return v.UInt32()
	case EcVarTypeDateTime:
		return v.Time()
	case EcVarTypeString:
		return v.Str()
	case EcVarObjectArrayPropertyHandle:
		return v.Handle()
	}
	return nil
}

func (v *EcVariant) array() interface{} {
	p := *(*unsafe.Pointer)(v.ptr())
	n := int(v.Count)
	switch v.Kind() {
	case EcVarTypeBoolean:
		vals := make([]bool, n)
		if p != nil {
			for i, b := range unsafe.Slice((*int32)(p), n) {
				vals[i] = b != 0
			}
		}
		return vals
	case EcVarTypeUInt32:
		vals := make([]int32, n)
		if p != nil {
			copy(vals, unsafe.Slice((*int32)(p), n))
		}
		return vals
	case EcVarTypeString:
		vals := make([]string, n)
		if p != nil {
			for i, s := range unsafe.Slice((**uint16)(p), n) {
				vals[i] = windows.UTF16PtrToString(s)
			}
		}
		return vals
	}
	return nil
}

// NewNullVariant returns an EcVarTypeNull variant, which resets a property to its default.
func NewNullVariant() *EcVariant {
	return &EcVariant{Type: EcVarTypeNull}
}

// NewBoolVariant returns an EcVarTypeBoolean variant.
func NewBoolVariant(b bool) *EcVariant {
	v := &EcVariant{Type: EcVarTypeBoolean}
	if b {
		v.val = 1
	}
	return v
}

// NewUInt32Variant returns an EcVarTypeUInt32 variant.
func NewUInt32Variant(n uint32) *EcVariant {
	return &EcVariant{Type: EcVarTypeUInt32, val: uint64(n)}
}

// NewDateTimeVariant returns an EcVarTypeDateTime variant holding t as FILETIME.
func NewDateTimeVariant(t time.Time) *EcVariant {
	return &EcVariant{Type: EcVarTypeDateTime, val: filetime.FromTime(t)}
}

type stringVariant struct {
	EcVariant
	s []uint16
}

// NewStringVariant returns an EcVarTypeString variant. The UTF-16 copy of s
// lives as long as the returned variant.
func NewStringVariant(s string) (*EcVariant, error) {
	u, err := windows.UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	sv := &stringVariant{s: u}
	sv.Type = EcVarTypeString
	*(**uint16)(sv.ptr()) = &u[0]
	return &sv.EcVariant, nil
}
