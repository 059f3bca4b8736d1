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
	"math"
	"time"
	"unsafe"
)

// VarType is the VARTYPE tag of an OLE VARIANT.
type VarType uint16

const (
	VT_EMPTY    VarType = 0
	VT_NULL     VarType = 1
	VT_I2       VarType = 2
	VT_I4       VarType = 3
	VT_R4       VarType = 4
	VT_R8       VarType = 5
	VT_CY       VarType = 6
	VT_DATE     VarType = 7
	VT_BSTR     VarType = 8
	VT_DISPATCH VarType = 9
	VT_ERROR    VarType = 10
	VT_BOOL     VarType = 11
	VT_VARIANT  VarType = 12
	VT_UNKNOWN  VarType = 13
	VT_DECIMAL  VarType = 14
	VT_I1       VarType = 16
	VT_UI1      VarType = 17
	VT_UI2      VarType = 18
	VT_UI4      VarType = 19
	VT_I8       VarType = 20
	VT_UI8      VarType = 21
	VT_INT      VarType = 22
	VT_UINT     VarType = 23
	VT_ARRAY    VarType = 0x2000
	VT_BYREF    VarType = 0x4000
	VT_TYPEMASK VarType = 0x0fff
)

// VARIANT_BOOL values.
const (
	VARIANT_TRUE  int16 = -1
	VARIANT_FALSE int16 = 0
)

// Variant is the OLE VARIANT structure. It is 24 bytes on 64-bit targets.
type Variant struct {
	VT        VarType
	reserved1 uint16
	reserved2 uint16
	reserved3 uint16
	val       [2]uint64
}

// SafeArrayBound is the SAFEARRAYBOUND structure.
type SafeArrayBound struct {
	Elements uint32
	LBound   int32
}

// SafeArray is the header of a one-dimensional SAFEARRAY.
type SafeArray struct {
	Dims     uint16
	Features uint16
	ElemSize uint32
	Locks    uint32
	Data     uintptr
	Bounds   [1]SafeArrayBound
}

func (v *Variant) ptr() unsafe.Pointer { return unsafe.Pointer(&v.val[0]) }

// NewInt32Variant returns a VT_I4 variant.
func NewInt32Variant(n int32) Variant {
	v := Variant{VT: VT_I4}
	*(*int32)(v.ptr()) = n
	return v
}

// NewBoolVariant returns a VT_BOOL variant.
func NewBoolVariant(b bool) Variant {
	v := Variant{VT: VT_BOOL}
	if b {
		*(*int16)(v.ptr()) = VARIANT_TRUE
	}
	return v
}

// NewBSTRVariant returns a VT_BSTR variant owning a freshly allocated BSTR.
// Release it with Clear.
func NewBSTRVariant(s string) (Variant, error) {
	b, err := AllocBSTR(s)
	if err != nil {
		return Variant{}, err
	}
	v := Variant{VT: VT_BSTR}
	*(**uint16)(v.ptr()) = b
	return v, nil
}

// Clear releases the resources owned by the variant and resets it to VT_EMPTY.
func (v *Variant) Clear() error {
	return VariantClear(v).Err()
}

// BSTR returns the raw BSTR pointer of a VT_BSTR variant.
func (v *Variant) BSTR() *uint16 {
	if v.VT != VT_BSTR {
		return nil
	}
	return *(**uint16)(v.ptr())
}

// Dispatch returns the interface pointer of a VT_DISPATCH variant.
func (v *Variant) Dispatch() *IDispatch {
	if v.VT != VT_DISPATCH {
		return nil
	}
	return *(**IDispatch)(v.ptr())
}

// Array returns the SAFEARRAY of a VT_ARRAY variant.
func (v *Variant) Array() *SafeArray {
	if v.VT&VT_ARRAY == 0 {
		return nil
	}
	return *(**SafeArray)(v.ptr())
}

// Value decodes the variant into a Go value. Arrays of variants decode into
// []interface{}. Unsupported types yield nil.
func (v *Variant) Value() interface{} {
	p := v.ptr()
	switch v.VT {
	case VT_EMPTY, VT_NULL:
		return nil
	case VT_I1:
		return *(*int8)(p)
	case VT_UI1:
		return *(*uint8)(p)
	case VT_I2:
		return *(*int16)(p)
	case VT_UI2:
		return *(*uint16)(p)
	case VT_I4, VT_INT:
		return *(*int32)(p)
	case VT_UI4, VT_UINT:
		return *(*uint32)(p)
	case VT_I8:
		return *(*int64)(p)
	case VT_UI8:
		return *(*uint64)(p)
	case VT_R4:
		return *(*float32)(p)
	case VT_R8:
		return *(*float64)(p)
	case VT_BOOL:
		return *(*int16)(p) != VARIANT_FALSE
	case VT_ERROR:
		return HResult(*(*int32)(p))
	case VT_DATE:
		return OleDateToTime(*(*float64)(p))
	case VT_BSTR:
		return BSTRToString(v.BSTR())
	case VT_DISPATCH:
		return v.Dispatch()
	case VT_ARRAY | VT_VARIANT:
		return v.variantArray()
	case VT_ARRAY | VT_UI1:
		return v.byteArray()
	}
	return nil
}

func (v *Variant) elems() (*SafeArray, unsafe.Pointer, int) {
	sa := v.Array()
	if sa == nil || sa.Dims != 1 {
		return nil, nil, 0
	}
	var data unsafe.Pointer
	if SafeArrayAccessData(sa, &data).Failed() {
		return nil, nil, 0
	}
	return sa, data, int(sa.Bounds[0].Elements)
}

func (v *Variant) variantArray() []interface{} {
	sa, data, n := v.elems()
	if sa == nil {
		return nil
	}
	defer SafeArrayUnaccessData(sa)
	vals := make([]interface{}, 0, n)
	for _, e := range unsafe.Slice((*Variant)(data), n) {
		vals = append(vals, e.Value())
	}
	return vals
}

func (v *Variant) byteArray() []byte {
	sa, data, n := v.elems()
	if sa == nil {
		return nil
	}
	defer SafeArrayUnaccessData(sa)
	b := make([]byte, n)
	copy(b, unsafe.Slice((*byte)(data), n))
	return b
}

var oleEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// OleDateToTime converts an OLE automation DATE. The integral part counts
// days from 1899-12-30 and the absolute fraction is the time of day.
func OleDateToTime(d float64) time.Time {
	days, frac := math.Modf(d)
	t := oleEpoch.AddDate(0, 0, int(days))
	return t.Add(time.Duration(math.Round(math.Abs(frac) * 24 * float64(time.Hour) / float64(time.Millisecond))) * time.Millisecond)
}
