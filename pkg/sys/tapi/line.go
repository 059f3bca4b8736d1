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
	"unsafe"

	"golang.org/x/sys/windows"
)

// LineInitializeEx initializes the application's use of TAPI for line devices.
// It returns the usage handle together with the number of line devices.
func LineInitializeEx(appName string, apiVersion uint32, params *LineInitializeExParams) (HLineApp, uint32, error) {
	name, err := windows.UTF16PtrFromString(appName)
	if err != nil {
		return 0, 0, err
	}
	if params != nil {
		params.TotalSize = uint32(unsafe.Sizeof(*params))
	}
	var (
		app     HLineApp
		numDevs uint32
		version = apiVersion
	)
	if err := lineErr(lineInitializeEx(&app, 0, 0, name, &numDevs, &version, params)); err != nil {
		return 0, 0, err
	}
	return app, numDevs, nil
}

// LineShutdown shuts down the application's usage of the line abstraction.
func LineShutdown(app HLineApp) error {
	return lineErr(lineShutdown(app))
}

// LineNegotiateAPIVersion negotiates the API version to use for the line device.
func LineNegotiateAPIVersion(app HLineApp, deviceID, lo, hi uint32) (uint32, LineExtensionID, error) {
	var (
		version uint32
		ext     LineExtensionID
	)
	if err := lineErr(lineNegotiateAPIVersion(app, deviceID, lo, hi, &version, &ext)); err != nil {
		return 0, ext, err
	}
	return version, ext, nil
}

// LineNegotiateExtVersion negotiates the extension version for the line device.
func LineNegotiateExtVersion(app HLineApp, deviceID, apiVersion, lo, hi uint32) (uint32, error) {
	var version uint32
	if err := lineErr(lineNegotiateExtVersion(app, deviceID, apiVersion, lo, hi, &version)); err != nil {
		return 0, err
	}
	return version, nil
}

// LineGetDevCaps queries the capabilities of the line device.
func LineGetDevCaps(app HLineApp, deviceID, apiVersion, extVersion uint32) (*VarBuffer[LineDevCaps], error) {
	return QueryVar[LineDevCaps](DefaultVarSize, func(caps *LineDevCaps) int32 {
		return lineGetDevCaps(app, deviceID, apiVersion, extVersion, caps)
	}, lineErr)
}

// LineGetAddressCaps queries the capabilities of an address on the line device.
func LineGetAddressCaps(app HLineApp, deviceID, addressID, apiVersion, extVersion uint32) (*VarBuffer[LineAddressCaps], error) {
	return QueryVar[LineAddressCaps](DefaultVarSize, func(caps *LineAddressCaps) int32 {
		return lineGetAddressCaps(app, deviceID, addressID, apiVersion, extVersion, caps)
	}, lineErr)
}

// LineOpen opens the line device. The callback instance is echoed in every
// LineMessage generated for the line.
func LineOpen(app HLineApp, deviceID, apiVersion, extVersion uint32, callbackInstance uintptr, privileges, mediaModes uint32, params *LineCallParams) (HLine, error) {
	var line HLine
	if err := lineErr(lineOpen(app, deviceID, &line, apiVersion, extVersion, callbackInstance, privileges, mediaModes, params)); err != nil {
		return 0, err
	}
	return line, nil
}

// LineClose closes the line device.
func LineClose(line HLine) error {
	return lineErr(lineClose(line))
}

// LineMakeCall places a call on the line. The returned request id completes
// with a LINE_REPLY message.
func LineMakeCall(line HLine, call *HCall, dest string, countryCode uint32, params *LineCallParams) (int32, error) {
	var addr *uint16
	if dest != "" {
		var err error
		addr, err = windows.UTF16PtrFromString(dest)
		if err != nil {
			return 0, err
		}
	}
	return lineResult(lineMakeCall(line, call, addr, countryCode, params))
}

// LineDial dials the destination address on an existing call.
func LineDial(call HCall, dest string, countryCode uint32) (int32, error) {
	addr, err := windows.UTF16PtrFromString(dest)
	if err != nil {
		return 0, err
	}
	return lineResult(lineDial(call, addr, countryCode))
}

// LineAnswer answers the offering call.
func LineAnswer(call HCall, userUserInfo []byte) (int32, error) {
	p, n := bytesPtr(userUserInfo)
	return lineResult(lineAnswer(call, p, n))
}

// LineDrop drops or disconnects the call.
func LineDrop(call HCall, userUserInfo []byte) (int32, error) {
	p, n := bytesPtr(userUserInfo)
	return lineResult(lineDrop(call, p, n))
}

// LineHold places the call on hold.
func LineHold(call HCall) (int32, error) { return lineResult(lineHold(call)) }

// LineUnhold retrieves the held call.
func LineUnhold(call HCall) (int32, error) { return lineResult(lineUnhold(call)) }

// LineDeallocateCall deallocates the call handle.
func LineDeallocateCall(call HCall) error { return lineErr(lineDeallocateCall(call)) }

// LineGetCallInfo returns fixed information about the call.
func LineGetCallInfo(call HCall) (*VarBuffer[LineCallInfo], error) {
	return QueryVar[LineCallInfo](DefaultVarSize, func(info *LineCallInfo) int32 {
		return lineGetCallInfo(call, info)
	}, lineErr)
}

// LineGetCallStatus returns the current status of the call.
func LineGetCallStatus(call HCall) (*VarBuffer[LineCallStatus], error) {
	return QueryVar[LineCallStatus](DefaultVarSize, func(status *LineCallStatus) int32 {
		return lineGetCallStatus(call, status)
	}, lineErr)
}

// LineGetLineDevStatus returns the current status of the open line.
func LineGetLineDevStatus(line HLine) (*VarBuffer[LineDevStatus], error) {
	return QueryVar[LineDevStatus](DefaultVarSize, func(status *LineDevStatus) int32 {
		return lineGetLineDevStatus(line, status)
	}, lineErr)
}

// LineGetAddressStatus returns the current status of the address.
func LineGetAddressStatus(line HLine, addressID uint32) (*VarBuffer[LineAddressStatus], error) {
	return QueryVar[LineAddressStatus](DefaultVarSize, func(status *LineAddressStatus) int32 {
		return lineGetAddressStatus(line, addressID, status)
	}, lineErr)
}

// LineGetMessage waits up to timeout milliseconds for the next line message.
// windows.INFINITE blocks until a message arrives.
func LineGetMessage(app HLineApp, timeout uint32) (*LineMessage, error) {
	var msg LineMessage
	if err := lineErr(lineGetMessage(app, &msg, timeout)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// LineSetStatusMessages selects the line and address state changes reported.
func LineSetStatusMessages(line HLine, lineStates, addressStates uint32) error {
	return lineErr(lineSetStatusMessages(line, lineStates, addressStates))
}

// LineGetID returns the device identifier for the device class associated with
// the selected line, address or call.
func LineGetID(line HLine, addressID uint32, call HCall, sel uint32, deviceClass string) (*VarBuffer[VarString], error) {
	class, err := windows.UTF16PtrFromString(deviceClass)
	if err != nil {
		return nil, err
	}
	return QueryVar[VarString](DefaultVarSize, func(id *VarString) int32 {
		return lineGetID(line, addressID, call, sel, id, class)
	}, lineErr)
}

// LineGetTranslateCaps returns the address translation capabilities.
func LineGetTranslateCaps(app HLineApp, apiVersion uint32) (*VarBuffer[LineTranslateCaps], error) {
	return QueryVar[LineTranslateCaps](DefaultVarSize*4, func(caps *LineTranslateCaps) int32 {
		return lineGetTranslateCaps(app, apiVersion, caps)
	}, lineErr)
}

// LineTranslateAddress translates a canonical address into dialable and displayable forms.
func LineTranslateAddress(app HLineApp, deviceID, apiVersion uint32, address string, card, options uint32) (*VarBuffer[LineTranslateOutput], error) {
	in, err := windows.UTF16PtrFromString(address)
	if err != nil {
		return nil, err
	}
	return QueryVar[LineTranslateOutput](DefaultVarSize, func(out *LineTranslateOutput) int32 {
		return lineTranslateAddress(app, deviceID, apiVersion, in, card, options, out)
	}, lineErr)
}

// LineGenerateDigits generates inband digits on the call.
func LineGenerateDigits(call HCall, digitMode uint32, digits string, duration uint32) error {
	d, err := windows.UTF16PtrFromString(digits)
	if err != nil {
		return err
	}
	return lineErr(lineGenerateDigits(call, digitMode, d, duration))
}

// LineMonitorDigits enables or disables the detection of inband digits.
func LineMonitorDigits(call HCall, digitModes uint32) error {
	return lineErr(lineMonitorDigits(call, digitModes))
}

// LineSetCallPrivilege sets the application's privilege on the call.
func LineSetCallPrivilege(call HCall, privilege uint32) error {
	return lineErr(lineSetCallPrivilege(call, privilege))
}

// TapiGetLocationInfo returns the country and city code of the current location.
func TapiGetLocationInfo() (country string, city string, err error) {
	var c, a [8]uint16
	if r := tapiGetLocationInfo(&c[0], &a[0]); r != 0 {
		return "", "", RequestErr(r)
	}
	return windows.UTF16ToString(c[:]), windows.UTF16ToString(a[:]), nil
}

// TapiRequestMakeCall asks the registered call manager to place a call.
func TapiRequestMakeCall(dest, appName, calledParty, comment string) error {
	ptrs := make([]*uint16, 4)
	for i, s := range []string{dest, appName, calledParty, comment} {
		if s == "" {
			continue
		}
		p, err := windows.UTF16PtrFromString(s)
		if err != nil {
			return err
		}
		ptrs[i] = p
	}
	if r := tapiRequestMakeCall(ptrs[0], ptrs[1], ptrs[2], ptrs[3]); r != 0 {
		return RequestErr(r)
	}
	return nil
}

func bytesPtr(b []byte) (*byte, uint32) {
	if len(b) == 0 {
		return nil, 0
	}
	return &b[0], uint32(len(b))
}
