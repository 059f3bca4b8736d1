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

package telephony

import (
	"github.com/rabbitstack/wincall/pkg/sys/tapi"
)

// lineAPI is the subset of the line device functions the sessions consume.
type lineAPI interface {
	initialize(appName string, apiVersion uint32, params *tapi.LineInitializeExParams) (tapi.HLineApp, uint32, error)
	shutdown(app tapi.HLineApp) error
	negotiateAPIVersion(app tapi.HLineApp, deviceID, lo, hi uint32) (uint32, error)
	devCaps(app tapi.HLineApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineDevCaps], error)
	addressCaps(app tapi.HLineApp, deviceID, addressID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineAddressCaps], error)
	open(app tapi.HLineApp, deviceID, apiVersion uint32, instance uintptr, privileges, mediaModes uint32) (tapi.HLine, error)
	close(line tapi.HLine) error
	setStatusMessages(line tapi.HLine, lineStates, addressStates uint32) error
	getMessage(app tapi.HLineApp, timeout uint32) (*tapi.LineMessage, error)
	callInfo(call tapi.HCall) (*tapi.VarBuffer[tapi.LineCallInfo], error)
	deallocateCall(call tapi.HCall) error
	translateCaps(app tapi.HLineApp, apiVersion uint32) (*tapi.VarBuffer[tapi.LineTranslateCaps], error)
	translateAddress(app tapi.HLineApp, deviceID, apiVersion uint32, address string, card, options uint32) (*tapi.VarBuffer[tapi.LineTranslateOutput], error)
	locationInfo() (string, string, error)
}

// phoneAPI is the subset of the phone device functions the sessions consume.
type phoneAPI interface {
	initialize(appName string, apiVersion uint32, params *tapi.PhoneInitializeExParams) (tapi.HPhoneApp, uint32, error)
	shutdown(app tapi.HPhoneApp) error
	negotiateAPIVersion(app tapi.HPhoneApp, deviceID, lo, hi uint32) (uint32, error)
	devCaps(app tapi.HPhoneApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.PhoneCaps], error)
	open(app tapi.HPhoneApp, deviceID, apiVersion uint32, privilege uint32) (tapi.HPhone, error)
	close(phone tapi.HPhone) error
	status(phone tapi.HPhone) (*tapi.VarBuffer[tapi.PhoneStatus], error)
	hookSwitch(phone tapi.HPhone) (uint32, error)
	display(phone tapi.HPhone) (*tapi.VarBuffer[tapi.VarString], error)
}

// sysLine dispatches to the tapi32.dll line functions. Extension
// versions are never negotiated.
type sysLine struct{}

func (sysLine) initialize(appName string, apiVersion uint32, params *tapi.LineInitializeExParams) (tapi.HLineApp, uint32, error) {
	return tapi.LineInitializeEx(appName, apiVersion, params)
}

func (sysLine) shutdown(app tapi.HLineApp) error { return tapi.LineShutdown(app) }

func (sysLine) negotiateAPIVersion(app tapi.HLineApp, deviceID, lo, hi uint32) (uint32, error) {
	ver, _, err := tapi.LineNegotiateAPIVersion(app, deviceID, lo, hi)
	return ver, err
}

func (sysLine) devCaps(app tapi.HLineApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineDevCaps], error) {
	return tapi.LineGetDevCaps(app, deviceID, apiVersion, 0)
}

func (sysLine) addressCaps(app tapi.HLineApp, deviceID, addressID, apiVersion uint32) (*tapi.VarBuffer[tapi.LineAddressCaps], error) {
	return tapi.LineGetAddressCaps(app, deviceID, addressID, apiVersion, 0)
}

func (sysLine) open(app tapi.HLineApp, deviceID, apiVersion uint32, instance uintptr, privileges, mediaModes uint32) (tapi.HLine, error) {
	return tapi.LineOpen(app, deviceID, apiVersion, 0, instance, privileges, mediaModes, nil)
}

func (sysLine) close(line tapi.HLine) error { return tapi.LineClose(line) }

func (sysLine) setStatusMessages(line tapi.HLine, lineStates, addressStates uint32) error {
	return tapi.LineSetStatusMessages(line, lineStates, addressStates)
}

func (sysLine) getMessage(app tapi.HLineApp, timeout uint32) (*tapi.LineMessage, error) {
	return tapi.LineGetMessage(app, timeout)
}

func (sysLine) callInfo(call tapi.HCall) (*tapi.VarBuffer[tapi.LineCallInfo], error) {
	return tapi.LineGetCallInfo(call)
}

func (sysLine) deallocateCall(call tapi.HCall) error { return tapi.LineDeallocateCall(call) }

func (sysLine) translateCaps(app tapi.HLineApp, apiVersion uint32) (*tapi.VarBuffer[tapi.LineTranslateCaps], error) {
	return tapi.LineGetTranslateCaps(app, apiVersion)
}

func (sysLine) translateAddress(app tapi.HLineApp, deviceID, apiVersion uint32, address string, card, options uint32) (*tapi.VarBuffer[tapi.LineTranslateOutput], error) {
	return tapi.LineTranslateAddress(app, deviceID, apiVersion, address, card, options)
}

func (sysLine) locationInfo() (string, string, error) { return tapi.TapiGetLocationInfo() }

type sysPhone struct{}

func (sysPhone) initialize(appName string, apiVersion uint32, params *tapi.PhoneInitializeExParams) (tapi.HPhoneApp, uint32, error) {
	return tapi.PhoneInitializeEx(appName, apiVersion, params)
}

func (sysPhone) shutdown(app tapi.HPhoneApp) error { return tapi.PhoneShutdown(app) }

func (sysPhone) negotiateAPIVersion(app tapi.HPhoneApp, deviceID, lo, hi uint32) (uint32, error) {
	return tapi.PhoneNegotiateAPIVersion(app, deviceID, lo, hi)
}

func (sysPhone) devCaps(app tapi.HPhoneApp, deviceID, apiVersion uint32) (*tapi.VarBuffer[tapi.PhoneCaps], error) {
	return tapi.PhoneGetDevCaps(app, deviceID, apiVersion, 0)
}

func (sysPhone) open(app tapi.HPhoneApp, deviceID, apiVersion uint32, privilege uint32) (tapi.HPhone, error) {
	return tapi.PhoneOpen(app, deviceID, apiVersion, 0, 0, privilege)
}

func (sysPhone) close(phone tapi.HPhone) error { return tapi.PhoneClose(phone) }

func (sysPhone) status(phone tapi.HPhone) (*tapi.VarBuffer[tapi.PhoneStatus], error) {
	return tapi.PhoneGetStatus(phone)
}

func (sysPhone) hookSwitch(phone tapi.HPhone) (uint32, error) { return tapi.PhoneGetHookSwitch(phone) }

func (sysPhone) display(phone tapi.HPhone) (*tapi.VarBuffer[tapi.VarString], error) {
	return tapi.PhoneGetDisplay(phone)
}
