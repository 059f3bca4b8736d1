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
	"github.com/pkg/errors"
	"github.com/rabbitstack/wincall/pkg/util/utf16"
	"golang.org/x/sys/windows"
)

// AllocBSTR allocates a BSTR holding s. Release it with SysFreeString.
func AllocBSTR(s string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, err
	}
	b := SysAllocString(p)
	if b == nil {
		return nil, errors.Wrap(E_OUTOFMEMORY, "SysAllocString")
	}
	return b, nil
}

// BSTRToString decodes a BSTR using its length prefix so embedded NULs
// survive.
func BSTRToString(b *uint16) string {
	if b == nil {
		return ""
	}
	return utf16.DecodePtr(b, int(SysStringLen(b)))
}

// TakeBSTR decodes and frees a BSTR returned by a COM getter.
func TakeBSTR(b *uint16) string {
	if b == nil {
		return ""
	}
	defer SysFreeString(b)
	return BSTRToString(b)
}
