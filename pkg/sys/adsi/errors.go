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
	"fmt"

	"golang.org/x/sys/windows"
)

// HResult is the status code returned by ADSI functions and COM methods.
type HResult uint32

const (
	S_OK    HResult = 0x00000000
	S_FALSE HResult = 0x00000001

	E_NOTIMPL           HResult = 0x80004001
	E_NOINTERFACE       HResult = 0x80004002
	E_POINTER           HResult = 0x80004003
	E_ABORT             HResult = 0x80004004
	E_FAIL              HResult = 0x80004005
	E_UNEXPECTED        HResult = 0x8000FFFF
	E_ACCESSDENIED      HResult = 0x80070005
	E_OUTOFMEMORY       HResult = 0x8007000E
	E_INVALIDARG        HResult = 0x80070057
	RPC_E_CHANGED_MODE  HResult = 0x80010106
	CO_E_NOTINITIALIZED HResult = 0x800401F0
	REGDB_E_CLASSNOTREG HResult = 0x80040154
)

const (
	E_ADS_BAD_PATHNAME            HResult = 0x80005000
	E_ADS_INVALID_DOMAIN_OBJECT   HResult = 0x80005001
	E_ADS_INVALID_USER_OBJECT     HResult = 0x80005002
	E_ADS_INVALID_COMPUTER_OBJECT HResult = 0x80005003
	E_ADS_UNKNOWN_OBJECT          HResult = 0x80005004
	E_ADS_PROPERTY_NOT_SET        HResult = 0x80005005
	E_ADS_PROPERTY_NOT_SUPPORTED  HResult = 0x80005006
	E_ADS_PROPERTY_INVALID        HResult = 0x80005007
	E_ADS_BAD_PARAMETER           HResult = 0x80005008
	E_ADS_OBJECT_UNBOUND          HResult = 0x80005009
	E_ADS_PROPERTY_NOT_MODIFIED   HResult = 0x8000500A
	E_ADS_PROPERTY_MODIFIED       HResult = 0x8000500B
	E_ADS_CANT_CONVERT_DATATYPE   HResult = 0x8000500C
	E_ADS_PROPERTY_NOT_FOUND      HResult = 0x8000500D
	E_ADS_OBJECT_EXISTS           HResult = 0x8000500E
	E_ADS_SCHEMA_VIOLATION        HResult = 0x8000500F
	E_ADS_COLUMN_NOT_SET          HResult = 0x80005010
	S_ADS_ERRORSOCCURRED          HResult = 0x00005011
	S_ADS_NOMORE_ROWS             HResult = 0x00005012
	S_ADS_NOMORE_COLUMNS          HResult = 0x00005013
	E_ADS_INVALID_FILTER          HResult = 0x80005014
)

var hresultNames = map[HResult]string{
	S_OK:                          "S_OK",
	S_FALSE:                       "S_FALSE",
	E_NOTIMPL:                     "E_NOTIMPL",
	E_NOINTERFACE:                 "E_NOINTERFACE",
	E_POINTER:                     "E_POINTER",
	E_ABORT:                       "E_ABORT",
	E_FAIL:                        "E_FAIL",
	E_UNEXPECTED:                  "E_UNEXPECTED",
	RPC_E_CHANGED_MODE:            "RPC_E_CHANGED_MODE",
	CO_E_NOTINITIALIZED:           "CO_E_NOTINITIALIZED",
	REGDB_E_CLASSNOTREG:           "REGDB_E_CLASSNOTREG",
	E_ADS_BAD_PATHNAME:            "E_ADS_BAD_PATHNAME",
	E_ADS_INVALID_DOMAIN_OBJECT:   "E_ADS_INVALID_DOMAIN_OBJECT",
	E_ADS_INVALID_USER_OBJECT:     "E_ADS_INVALID_USER_OBJECT",
	E_ADS_INVALID_COMPUTER_OBJECT: "E_ADS_INVALID_COMPUTER_OBJECT",
	E_ADS_UNKNOWN_OBJECT:          "E_ADS_UNKNOWN_OBJECT",
	E_ADS_PROPERTY_NOT_SET:        "E_ADS_PROPERTY_NOT_SET",
	E_ADS_PROPERTY_NOT_SUPPORTED:  "E_ADS_PROPERTY_NOT_SUPPORTED",
	E_ADS_PROPERTY_INVALID:        "E_ADS_PROPERTY_INVALID",
	E_ADS_BAD_PARAMETER:           "E_ADS_BAD_PARAMETER",
	E_ADS_OBJECT_UNBOUND:          "E_ADS_OBJECT_UNBOUND",
	E_ADS_PROPERTY_NOT_MODIFIED:   "E_ADS_PROPERTY_NOT_MODIFIED",
	E_ADS_PROPERTY_MODIFIED:       "E_ADS_PROPERTY_MODIFIED",
	E_ADS_CANT_CONVERT_DATATYPE:   "E_ADS_CANT_CONVERT_DATATYPE",
	E_ADS_PROPERTY_NOT_FOUND:      "E_ADS_PROPERTY_NOT_FOUND",
	E_ADS_OBJECT_EXISTS:           "E_ADS_OBJECT_EXISTS",
	E_ADS_SCHEMA_VIOLATION:        "E_ADS_SCHEMA_VIOLATION",
	E_ADS_COLUMN_NOT_SET:          "E_ADS_COLUMN_NOT_SET",
	S_ADS_ERRORSOCCURRED:          "S_ADS_ERRORSOCCURRED",
	S_ADS_NOMORE_ROWS:             "S_ADS_NOMORE_ROWS",
	S_ADS_NOMORE_COLUMNS:          "S_ADS_NOMORE_COLUMNS",
	E_ADS_INVALID_FILTER:          "E_ADS_INVALID_FILTER",
}

const facilityWin32 = 7

// Failed reports whether the severity bit is set.
func (hr HResult) Failed() bool { return int32(hr) < 0 }

// Succeeded reports whether the severity bit is clear. S_FALSE and the
// S_ADS_* codes are successes.
func (hr HResult) Succeeded() bool { return int32(hr) >= 0 }

// Facility returns the facility field of the status code.
func (hr HResult) Facility() uint32 { return (uint32(hr) >> 16) & 0x1fff }

// Code returns the code field of the status code.
func (hr HResult) Code() uint32 { return uint32(hr) & 0xffff }

func (hr HResult) Error() string {
	if s, ok := hresultNames[hr]; ok {
		return s
	}
	if hr.Facility() == facilityWin32 {
		return fmt.Sprintf("HRESULT 0x%08X: %s", uint32(hr), windows.Errno(hr.Code()).Error())
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

// Unwrap exposes the Win32 error code carried by FACILITY_WIN32 status codes.
func (hr HResult) Unwrap() error {
	if hr.Failed() && hr.Facility() == facilityWin32 {
		return windows.Errno(hr.Code())
	}
	return nil
}

// Err returns nil for success codes and the HResult otherwise.
func (hr HResult) Err() error {
	if hr.Failed() {
		return hr
	}
	return nil
}

// HResultFromWin32 maps a Win32 error code to a FACILITY_WIN32 status code.
func HResultFromWin32(e windows.Errno) HResult {
	if e == 0 {
		return S_OK
	}
	return HResult(uint32(e)&0xffff | facilityWin32<<16 | 0x80000000)
}

// LastError returns the extended error code and message the ADSI provider
// recorded on the calling thread.
func LastError() (uint32, string) {
	var code uint32
	msg := make([]uint16, 256)
	provider := make([]uint16, 64)
	if hr := ADsGetLastError(&code, &msg[0], uint32(len(msg)), &provider[0], uint32(len(provider))); hr.Failed() {
		return 0, ""
	}
	return code, windows.UTF16ToString(msg)
}
