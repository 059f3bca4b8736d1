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

// PhoneInitializeEx initializes the application's use of TAPI for phone devices.
func PhoneInitializeEx(appName string, apiVersion uint32, params *PhoneInitializeExParams) (HPhoneApp, uint32, error) {
	name, err := windows.UTF16PtrFromString(appName)
	if err != nil {
		return 0, 0, err
	}
	if params != nil {
		params.TotalSize = uint32(unsafe.Sizeof(*params))
	}
	var (
		app     HPhoneApp
		numDevs uint32
		version = apiVersion
	)
	if err := phoneErr(phoneInitializeEx(&app, 0, 0, name, &numDevs, &version, params)); err != nil {
		return 0, 0, err
	}
	return app, numDevs, nil
}

// PhoneShutdown shuts down the application's usage of the phone abstraction.
func PhoneShutdown(app HPhoneApp) error { return phoneErr(phoneShutdown(app)) }

// PhoneNegotiateAPIVersion negotiates the API version to use for the phone device.
func PhoneNegotiateAPIVersion(app HPhoneApp, deviceID, lo, hi uint32) (uint32, error) {
	var (
		version uint32
		ext     PhoneExtensionID
	)
	if err := phoneErr(phoneNegotiateAPIVersion(app, deviceID, lo, hi, &version, &ext)); err != nil {
		return 0, err
	}
	return version, nil
}

// PhoneGetDevCaps queries the capabilities of the phone device.
func PhoneGetDevCaps(app HPhoneApp, deviceID, apiVersion, extVersion uint32) (*VarBuffer[PhoneCaps], error) {
	return QueryVar[PhoneCaps](DefaultVarSize, func(caps *PhoneCaps) int32 {
		return phoneGetDevCaps(app, deviceID, apiVersion, extVersion, caps)
	}, phoneErr)
}

// PhoneOpen opens the phone device with the given privilege.
func PhoneOpen(app HPhoneApp, deviceID, apiVersion, extVersion uint32, callbackInstance uintptr, privilege uint32) (HPhone, error) {
	var phone HPhone
	if err := phoneErr(phoneOpen(app, deviceID, &phone, apiVersion, extVersion, callbackInstance, privilege)); err != nil {
		return 0, err
	}
	return phone, nil
}

// PhoneClose closes the phone device.
func PhoneClose(phone HPhone) error { return phoneErr(phoneClose(phone)) }

// PhoneGetMessage waits up to timeout milliseconds for the next phone message.
func PhoneGetMessage(app HPhoneApp, timeout uint32) (*PhoneMessage, error) {
	var msg PhoneMessage
	if err := phoneErr(phoneGetMessage(app, &msg, timeout)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// PhoneGetStatus returns the complete status of the open phone.
func PhoneGetStatus(phone HPhone) (*VarBuffer[PhoneStatus], error) {
	return QueryVar[PhoneStatus](DefaultVarSize, func(status *PhoneStatus) int32 {
		return phoneGetStatus(phone, status)
	}, phoneErr)
}

// PhoneGetHookSwitch returns the hookswitch devices that are off-hook.
func PhoneGetHookSwitch(phone HPhone) (uint32, error) {
	var devs uint32
	if err := phoneErr(phoneGetHookSwitch(phone, &devs)); err != nil {
		return 0, err
	}
	return devs, nil
}

// PhoneSetHookSwitch sets the hook state of the selected hookswitch devices.
func PhoneSetHookSwitch(phone HPhone, devs, mode uint32) (int32, error) {
	return phoneResult(phoneSetHookSwitch(phone, devs, mode))
}

// PhoneGetRing returns the ring mode and volume.
func PhoneGetRing(phone HPhone) (mode uint32, volume uint32, err error) {
	err = phoneErr(phoneGetRing(phone, &mode, &volume))
	return
}

// PhoneSetRing rings the phone with the given mode and volume.
func PhoneSetRing(phone HPhone, mode, volume uint32) (int32, error) {
	return phoneResult(phoneSetRing(phone, mode, volume))
}

// PhoneGetVolume returns the volume of the hookswitch device.
func PhoneGetVolume(phone HPhone, dev uint32) (uint32, error) {
	var volume uint32
	if err := phoneErr(phoneGetVolume(phone, dev, &volume)); err != nil {
		return 0, err
	}
	return volume, nil
}

// PhoneSetVolume sets the volume of the hookswitch device.
func PhoneSetVolume(phone HPhone, dev, volume uint32) (int32, error) {
	return phoneResult(phoneSetVolume(phone, dev, volume))
}

// PhoneGetDisplay returns the current contents of the phone display.
func PhoneGetDisplay(phone HPhone) (*VarBuffer[VarString], error) {
	return QueryVar[VarString](DefaultVarSize, func(display *VarString) int32 {
		return phoneGetDisplay(phone, display)
	}, phoneErr)
}

// PhoneSetDisplay writes the text at the given row and column of the display.
func PhoneSetDisplay(phone HPhone, row, column uint32, text string) (int32, error) {
	p, n := bytesPtr([]byte(text))
	return phoneResult(phoneSetDisplay(phone, row, column, p, n))
}
