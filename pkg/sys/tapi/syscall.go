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

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall.go

// line devices
//sys lineInitializeEx(lineApp *HLineApp, instance windows.Handle, callback uintptr, appName *uint16, numDevs *uint32, apiVersion *uint32, params *LineInitializeExParams) (r int32) = tapi32.lineInitializeExW
//sys lineShutdown(lineApp HLineApp) (r int32) = tapi32.lineShutdown
//sys lineNegotiateAPIVersion(lineApp HLineApp, deviceID uint32, apiLowVersion uint32, apiHighVersion uint32, apiVersion *uint32, extensionID *LineExtensionID) (r int32) = tapi32.lineNegotiateAPIVersion
//sys lineNegotiateExtVersion(lineApp HLineApp, deviceID uint32, apiVersion uint32, extLowVersion uint32, extHighVersion uint32, extVersion *uint32) (r int32) = tapi32.lineNegotiateExtVersion
//sys lineGetDevCaps(lineApp HLineApp, deviceID uint32, apiVersion uint32, extVersion uint32, caps *LineDevCaps) (r int32) = tapi32.lineGetDevCapsW
//sys lineGetAddressCaps(lineApp HLineApp, deviceID uint32, addressID uint32, apiVersion uint32, extVersion uint32, caps *LineAddressCaps) (r int32) = tapi32.lineGetAddressCapsW
//sys lineOpen(lineApp HLineApp, deviceID uint32, line *HLine, apiVersion uint32, extVersion uint32, callbackInstance uintptr, privileges uint32, mediaModes uint32, params *LineCallParams) (r int32) = tapi32.lineOpenW
//sys lineClose(line HLine) (r int32) = tapi32.lineClose
//sys lineMakeCall(line HLine, call *HCall, destAddress *uint16, countryCode uint32, params *LineCallParams) (r int32) = tapi32.lineMakeCallW
//sys lineDial(call HCall, destAddress *uint16, countryCode uint32) (r int32) = tapi32.lineDialW
//sys lineAnswer(call HCall, userUserInfo *byte, size uint32) (r int32) = tapi32.lineAnswer
//sys lineDrop(call HCall, userUserInfo *byte, size uint32) (r int32) = tapi32.lineDrop
//sys lineHold(call HCall) (r int32) = tapi32.lineHold
//sys lineUnhold(call HCall) (r int32) = tapi32.lineUnhold
//sys lineDeallocateCall(call HCall) (r int32) = tapi32.lineDeallocateCall
//sys lineGetCallInfo(call HCall, info *LineCallInfo) (r int32) = tapi32.lineGetCallInfoW
//sys lineGetCallStatus(call HCall, status *LineCallStatus) (r int32) = tapi32.lineGetCallStatus
//sys lineGetLineDevStatus(line HLine, status *LineDevStatus) (r int32) = tapi32.lineGetLineDevStatusW
//sys lineGetAddressStatus(line HLine, addressID uint32, status *LineAddressStatus) (r int32) = tapi32.lineGetAddressStatusW
//sys lineGetMessage(lineApp HLineApp, msg *LineMessage, timeout uint32) (r int32) = tapi32.lineGetMessage
//sys lineSetStatusMessages(line HLine, lineStates uint32, addressStates uint32) (r int32) = tapi32.lineSetStatusMessages
//sys lineGetID(line HLine, addressID uint32, call HCall, sel uint32, deviceID *VarString, deviceClass *uint16) (r int32) = tapi32.lineGetIDW
//sys lineGetTranslateCaps(lineApp HLineApp, apiVersion uint32, caps *LineTranslateCaps) (r int32) = tapi32.lineGetTranslateCapsW
//sys lineTranslateAddress(lineApp HLineApp, deviceID uint32, apiVersion uint32, addressIn *uint16, card uint32, translateOptions uint32, output *LineTranslateOutput) (r int32) = tapi32.lineTranslateAddressW
//sys lineGenerateDigits(call HCall, digitMode uint32, digits *uint16, duration uint32) (r int32) = tapi32.lineGenerateDigitsW
//sys lineMonitorDigits(call HCall, digitModes uint32) (r int32) = tapi32.lineMonitorDigits
//sys lineSetCallPrivilege(call HCall, callPrivilege uint32) (r int32) = tapi32.lineSetCallPrivilege

// assisted telephony
//sys tapiGetLocationInfo(countryCode *uint16, cityCode *uint16) (r int32) = tapi32.tapiGetLocationInfoW
//sys tapiRequestMakeCall(destAddress *uint16, appName *uint16, calledParty *uint16, comment *uint16) (r int32) = tapi32.tapiRequestMakeCallW

// phone devices
//sys phoneInitializeEx(phoneApp *HPhoneApp, instance windows.Handle, callback uintptr, appName *uint16, numDevs *uint32, apiVersion *uint32, params *PhoneInitializeExParams) (r int32) = tapi32.phoneInitializeExW
//sys phoneShutdown(phoneApp HPhoneApp) (r int32) = tapi32.phoneShutdown
//sys phoneNegotiateAPIVersion(phoneApp HPhoneApp, deviceID uint32, apiLowVersion uint32, apiHighVersion uint32, apiVersion *uint32, extensionID *PhoneExtensionID) (r int32) = tapi32.phoneNegotiateAPIVersion
//sys phoneGetDevCaps(phoneApp HPhoneApp, deviceID uint32, apiVersion uint32, extVersion uint32, caps *PhoneCaps) (r int32) = tapi32.phoneGetDevCapsW
//sys phoneOpen(phoneApp HPhoneApp, deviceID uint32, phone *HPhone, apiVersion uint32, extVersion uint32, callbackInstance uintptr, privilege uint32) (r int32) = tapi32.phoneOpen
//sys phoneClose(phone HPhone) (r int32) = tapi32.phoneClose
//sys phoneGetMessage(phoneApp HPhoneApp, msg *PhoneMessage, timeout uint32) (r int32) = tapi32.phoneGetMessage
//sys phoneGetStatus(phone HPhone, status *PhoneStatus) (r int32) = tapi32.phoneGetStatusW
//sys phoneGetHookSwitch(phone HPhone, hookSwitchDevs *uint32) (r int32) = tapi32.phoneGetHookSwitch
//sys phoneSetHookSwitch(phone HPhone, hookSwitchDevs uint32, hookSwitchMode uint32) (r int32) = tapi32.phoneSetHookSwitch
//sys phoneGetRing(phone HPhone, ringMode *uint32, volume *uint32) (r int32) = tapi32.phoneGetRing
//sys phoneSetRing(phone HPhone, ringMode uint32, volume uint32) (r int32) = tapi32.phoneSetRing
//sys phoneGetVolume(phone HPhone, hookSwitchDev uint32, volume *uint32) (r int32) = tapi32.phoneGetVolume
//sys phoneSetVolume(phone HPhone, hookSwitchDev uint32, volume uint32) (r int32) = tapi32.phoneSetVolume
//sys phoneGetDisplay(phone HPhone, display *VarString) (r int32) = tapi32.phoneGetDisplay
//sys phoneSetDisplay(phone HPhone, row uint32, column uint32, display *byte, size uint32) (r int32) = tapi32.phoneSetDisplay
